package query

import (
	"fmt"
	"strings"

	"transactions-service/internal/apperr"

	"github.com/go-playground/validator/v10"
)

type SortField string

type SortOrder string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"

	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"

	DefaultSort  = SortByDate
	DefaultOrder = OrderDesc
)

var validate = validator.New()

// ListQuery описывает сортировку списка транзакций.
// Порядок записей с равным значением ключа сортировки не определен и может меняться между вызовами.
type ListQuery struct {
	Sort  SortField
	Order SortOrder
}

// DefaultListQuery возвращает сортировку по умолчанию: сначала самые свежие
func DefaultListQuery() ListQuery {
	return ListQuery{Sort: DefaultSort, Order: DefaultOrder}
}

// ListParams - параметры sort и order в том виде, в каком они пришли от клиента.
// nil означает, что параметр не передан; пустая строка считается переданным значением.
type ListParams struct {
	Sort  *string
	Order *string
}

// Param возвращает указатель на значение переданного параметра
func Param(v string) *string {
	return &v
}

// ParseListQuery проверяет параметры sort и order. Значения по умолчанию применяются
// только к отсутствующим параметрам; любое значение вне перечисления, включая пустое, отклоняется.
func ParseListQuery(p ListParams) (ListQuery, error) {
	q := DefaultListQuery()

	if p.Sort != nil {
		if err := validate.Var(*p.Sort, "required,oneof=date amount"); err != nil {
			return ListQuery{}, apperr.NewValidationError(
				apperr.KindBadValue, "sort", "sort must be one of [date amount], got '%s'", *p.Sort,
			)
		}
		q.Sort = SortField(*p.Sort)
	}

	if p.Order != nil {
		if err := validate.Var(*p.Order, "required,oneof=asc desc"); err != nil {
			return ListQuery{}, apperr.NewValidationError(
				apperr.KindBadValue, "order", "order must be one of [asc desc], got '%s'", *p.Order,
			)
		}
		q.Order = SortOrder(*p.Order)
	}

	return q, nil
}

// Column возвращает имя колонки для ORDER BY; значение берется только из закрытого перечисления
func (q ListQuery) Column() string {
	if q.Sort == SortByAmount {
		return "amount"
	}
	return `"date"`
}

// Direction возвращает направление сортировки для ORDER BY
func (q ListQuery) Direction() string {
	if q.Order == OrderAsc {
		return "ASC"
	}
	return "DESC"
}

// OrderClause возвращает выражение для ORDER BY, например `"date" DESC`
func (q ListQuery) OrderClause() string {
	return fmt.Sprintf("%s %s", q.Column(), q.Direction())
}

func (q ListQuery) String() string {
	return strings.ToLower(fmt.Sprintf("%s %s", q.Sort, q.Order))
}
