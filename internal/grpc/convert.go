package grpc

import (
	"math"
	"strconv"

	"transactions-service/internal/apperr"
	"transactions-service/internal/models"
	"transactions-service/internal/query"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const fieldID = "id"

// rawID извлекает id из запроса в том же виде, в каком он пришел бы в пути HTTP-запроса
func rawID(req *structpb.Struct) string {
	v, ok := req.GetFields()[fieldID]
	if !ok {
		return ""
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n >= 0 && n == math.Trunc(n) && n < math.MaxInt64 {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return ""
	}
}

// payload возвращает поля транзакции без id
func payload(req *structpb.Struct) map[string]interface{} {
	fields := req.AsMap()
	delete(fields, fieldID)
	return fields
}

// listParams извлекает sort и order. Отсутствующее поле - nil; значение не строкового типа
// отклоняется так же, как строка вне перечисления.
func listParams(req *structpb.Struct) (query.ListParams, error) {
	sort, err := listParam(req, "sort")
	if err != nil {
		return query.ListParams{}, err
	}
	order, err := listParam(req, "order")
	if err != nil {
		return query.ListParams{}, err
	}
	return query.ListParams{Sort: sort, Order: order}, nil
}

func listParam(req *structpb.Struct, name string) (*string, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	str, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil, apperr.NewValidationError(apperr.KindBadValue, name, "%s must be a string", name)
	}
	return query.Param(str.StringValue), nil
}

func transactionToStruct(tx *models.Transaction) (*structpb.Struct, error) {
	return structpb.NewStruct(transactionToMap(tx))
}

func transactionToMap(tx *models.Transaction) map[string]interface{} {
	return map[string]interface{}{
		"id":     tx.ID,
		"amount": tx.Amount,
		"date":   tx.Date,
	}
}

// toStatus отображает ошибки сервиса в коды gRPC
func toStatus(err error, fallback string) error {
	if vErr, ok := apperr.AsValidation(err); ok {
		st := status.New(codes.InvalidArgument, vErr.Message)
		detailed, detailErr := st.WithDetails(&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: vErr.Field, Description: string(vErr.Kind)},
			},
		})
		if detailErr != nil {
			return st.Err()
		}
		return detailed.Err()
	}

	if apperr.IsNotFound(err) {
		return status.Error(codes.NotFound, err.Error())
	}

	return status.Error(codes.Internal, fallback)
}
