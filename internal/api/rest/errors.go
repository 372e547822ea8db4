package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"transactions-service/internal/apperr"
	"transactions-service/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const fieldBody = "body"

func init() {
	// Числа в теле запроса остаются json.Number: валидатор отличает целое от дробного без потери точности
	binding.EnableDecoderUseNumber = true
}

// decodePayload читает тело запроса как один JSON-объект
func decodePayload(c *gin.Context) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		return nil, bodyError()
	}

	// Данные после первого JSON-значения не допускаются
	if raw, ok := c.Get(gin.BodyBytesKey); ok {
		if body, ok := raw.([]byte); ok && !json.Valid(body) {
			return nil, bodyError()
		}
	}

	// Тело "null" декодируется без ошибки в nil
	if payload == nil {
		return nil, bodyError()
	}
	return payload, nil
}

func bodyError() error {
	return apperr.NewValidationError(apperr.KindBadType, fieldBody, "request body must be a JSON object")
}

// writeError отображает ошибку сервиса в HTTP-ответ: 422, 404 или 500 с сообщением fallback
func writeError(c *gin.Context, err error, fallback string) {
	if vErr, ok := apperr.AsValidation(err); ok {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: vErr.Message,
			Kind:  string(vErr.Kind),
			Field: vErr.Field,
		})
		return
	}

	if apperr.IsNotFound(err) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
		return
	}

	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fallback})
}
