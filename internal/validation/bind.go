package validation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// BindForm binds the JSON body into the form, trims it and runs the
// validators. On failure it writes the 400 response itself and returns
// an error so the handler can short-circuit; invalid input never gets
// past this point.
func BindForm(c *gin.Context, form *CreateOrderForm, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return err
	}

	form.Trim()

	if err := v.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation_failed",
			"fields": fieldErrors(err),
		})
		return err
	}
	return nil
}

func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		out["body"] = err.Error()
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
