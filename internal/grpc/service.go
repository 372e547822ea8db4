package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName - полное имя gRPC-сервиса. Сообщения передаются как google.protobuf.Struct
// с теми же полями, что и в JSON API.
const ServiceName = "transactions.v1.TransactionService"

const (
	MethodListTransactions  = "ListTransactions"
	MethodGetTransaction    = "GetTransaction"
	MethodCreateTransaction = "CreateTransaction"
	MethodUpdateTransaction = "UpdateTransaction"
	MethodDeleteTransaction = "DeleteTransaction"
)

// TransactionServiceServer - серверная часть сервиса transactions.v1.TransactionService
type TransactionServiceServer interface {
	// ListTransactions: {sort?, order?} -> {transactions: [...]}
	ListTransactions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	// GetTransaction: {id} -> транзакция
	GetTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	// CreateTransaction: {amount, date} -> транзакция
	CreateTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	// UpdateTransaction: {id, amount, date} -> транзакция
	UpdateTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	// DeleteTransaction: {id} -> {}
	DeleteTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv TransactionServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(TransactionServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(server, ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// TransactionServiceDesc описывает сервис для grpc.Server.RegisterService
var TransactionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TransactionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodListTransactions,
			Handler: unaryHandler(MethodListTransactions, func(s TransactionServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return s.ListTransactions(ctx, req)
			}),
		},
		{
			MethodName: MethodGetTransaction,
			Handler: unaryHandler(MethodGetTransaction, func(s TransactionServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return s.GetTransaction(ctx, req)
			}),
		},
		{
			MethodName: MethodCreateTransaction,
			Handler: unaryHandler(MethodCreateTransaction, func(s TransactionServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return s.CreateTransaction(ctx, req)
			}),
		},
		{
			MethodName: MethodUpdateTransaction,
			Handler: unaryHandler(MethodUpdateTransaction, func(s TransactionServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return s.UpdateTransaction(ctx, req)
			}),
		},
		{
			MethodName: MethodDeleteTransaction,
			Handler: unaryHandler(MethodDeleteTransaction, func(s TransactionServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return s.DeleteTransaction(ctx, req)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterTransactionServiceServer регистрирует реализацию сервиса на gRPC-сервере
func RegisterTransactionServiceServer(s grpc.ServiceRegistrar, srv TransactionServiceServer) {
	s.RegisterService(&TransactionServiceDesc, srv)
}
