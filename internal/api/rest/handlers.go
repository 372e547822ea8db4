package rest

import (
	"net/http"

	"transactions-service/internal/generator"
	"transactions-service/internal/query"
	"transactions-service/internal/services"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	transactionService services.TransactionService
	generator          *generator.TransactionGenerator
}

// Создает новые обработчики REST API
func NewHandlers(transactionService services.TransactionService) *Handlers {
	return &Handlers{
		transactionService: transactionService,
		generator:          generator.NewTransactionGenerator(),
	}
}

// ListTransactions возвращает все транзакции
// @Summary Получить список транзакций
// @Description Возвращает все транзакции, отсортированные по дате или сумме. По умолчанию сначала самые свежие.
// @Tags transactions
// @Produce json
// @Param sort query string false "Поле сортировки" Enums(date, amount) default(date)
// @Param order query string false "Направление сортировки" Enums(asc, desc) default(desc)
// @Success 200 {array} models.Transaction "Список транзакций"
// @Failure 422 {object} models.ErrorResponse "Недопустимое значение sort или order"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /transactions [get]
func (h *Handlers) ListTransactions(c *gin.Context) {
	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err, "Failed to get transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction создает транзакцию
// @Summary Создать транзакцию
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.TransactionRequest true "Данные транзакции"
// @Success 201 {object} models.Transaction "Созданная транзакция"
// @Failure 422 {object} models.ErrorResponse "Отсутствует поле, неверный тип или формат даты"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /transactions [post]
func (h *Handlers) CreateTransaction(c *gin.Context) {
	payload, err := decodePayload(c)
	if err != nil {
		writeError(c, err, "")
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// GetTransaction возвращает транзакцию по id
// @Summary Получить транзакцию
// @Tags transactions
// @Produce json
// @Param id path int true "ID транзакции"
// @Success 200 {object} models.Transaction "Транзакция"
// @Failure 404 {object} models.ErrorResponse "Not Found"
// @Failure 422 {object} models.ErrorResponse "id не является числом"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /transactions/{id} [get]
func (h *Handlers) GetTransaction(c *gin.Context) {
	tx, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to get transaction")
		return
	}

	c.JSON(http.StatusOK, tx)
}

// UpdateTransaction полностью заменяет транзакцию
// @Summary Обновить транзакцию
// @Description Перезаписывает amount и date. Оба поля обязательны.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "ID транзакции"
// @Param transaction body models.TransactionRequest true "Новые данные транзакции"
// @Success 200 {object} models.Transaction "Обновленная транзакция"
// @Failure 404 {object} models.ErrorResponse "Not Found"
// @Failure 422 {object} models.ErrorResponse "Неверный id или тело запроса"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /transactions/{id} [put]
func (h *Handlers) UpdateTransaction(c *gin.Context) {
	payload, err := decodePayload(c)
	if err != nil {
		writeError(c, err, "")
		return
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, tx)
}

// DeleteTransaction удаляет транзакцию
// @Summary Удалить транзакцию
// @Tags transactions
// @Param id path int true "ID транзакции"
// @Success 204 "Транзакция удалена"
// @Failure 404 {object} models.ErrorResponse "Not Found"
// @Failure 422 {object} models.ErrorResponse "id не является числом"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /transactions/{id} [delete]
func (h *Handlers) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

// SampleTransaction генерирует пример тела запроса
// @Summary Сгенерировать пример транзакции
// @Description Возвращает случайное валидное тело запроса для POST /transactions. В хранилище ничего не записывается.
// @Tags transactions
// @Produce json
// @Param profile query string false "Профиль суммы" Enums(small, medium, large, refund)
// @Success 200 {object} models.TransactionRequest "Пример тела запроса"
// @Failure 422 {object} models.ErrorResponse "Неизвестный профиль"
// @Router /api/v1/transactions/sample [get]
func (h *Handlers) SampleTransaction(c *gin.Context) {
	payload, err := h.generator.GeneratePayload(c.Query("profile"))
	if err != nil {
		writeError(c, err, "Failed to generate transaction")
		return
	}

	c.JSON(http.StatusOK, payload)
}

// listParams различает отсутствующий параметр и переданный пустым: пустое значение не заменяется значением по умолчанию
func listParams(c *gin.Context) query.ListParams {
	var params query.ListParams
	if sort, ok := c.GetQuery("sort"); ok {
		params.Sort = query.Param(sort)
	}
	if order, ok := c.GetQuery("order"); ok {
		params.Order = query.Param(order)
	}
	return params
}
