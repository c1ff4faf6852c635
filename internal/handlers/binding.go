package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/kurumaops/dealer_mgmt_app/internal/dto"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterBindingValidations(v); err != nil {
			panic(err)
		}
	}
}
