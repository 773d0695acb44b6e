package grpc

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/usecase/query"
)

const (
	ServiceName = "catalog.v1.CatalogService"

	ListProductsMethod = "/" + ServiceName + "/ListProducts"
	GetProductMethod   = "/" + ServiceName + "/GetProduct"
)

// CatalogServiceServer is the server API for the catalog service.
// Requests and responses are carried as google.protobuf.Struct.
type CatalogServiceServer interface {
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// CatalogService_ServiceDesc describes the catalog service for grpc.Server.RegisterService
var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler:    _CatalogService_ListProducts_Handler,
		},
		{
			MethodName: "GetProduct",
			Handler:    _CatalogService_GetProduct_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

// RegisterCatalogServiceServer registers srv on s
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func _CatalogService_ListProducts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListProducts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListProductsMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).ListProducts(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetProduct_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetProductMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).GetProduct(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogServer implements CatalogServiceServer on top of the query handlers
type CatalogServer struct {
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler
}

// NewCatalogServer creates a catalog server (manual DI)
func NewCatalogServer(repo domain.ProductRepository, publisher query.ViewPublisher) *CatalogServer {
	return NewCatalogServerWithDI(
		query.NewGetProductHandler(repo, publisher),
		query.NewListProductsHandler(repo),
	)
}

// NewCatalogServerWithDI creates a catalog server from prebuilt query handlers.
// This is used by Wire for automatic dependency injection
func NewCatalogServerWithDI(getProductHandler *query.GetProductHandler, listHandler *query.ListProductsHandler) *CatalogServer {
	return &CatalogServer{
		getProductHandler: getProductHandler,
		listHandler:       listHandler,
	}
}

// ListProducts filters the catalog. Request fields are criteria names
// ("category", "minPrice", ...) holding strings or numbers.
func (s *CatalogServer) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	q := query.ListProductsQuery{
		Criteria: domain.ParseCriteria(structToValues(req)),
	}

	result, err := s.listHandler.Handle(ctx, q)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list products: %v", err)
	}

	products := make([]interface{}, len(result.Products))
	for i, p := range result.Products {
		products[i] = productToMap(p)
	}

	resp, err := structpb.NewStruct(map[string]interface{}{
		"products": products,
		"total":    result.Total,
		"matched":  result.Matched,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode products: %v", err)
	}
	return resp, nil
}

// GetProduct returns the product whose id equals req["id"]
func (s *CatalogServer) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	idValue, ok := req.GetFields()["id"]
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	id, ok := idValue.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "id must be a string")
	}

	product, err := s.getProductHandler.Handle(ctx, query.GetProductQuery{ID: id.StringValue})
	if errors.Is(err, domain.ErrProductNotFound) {
		return nil, status.Errorf(codes.NotFound, "product not found: %s", id.StringValue)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to get product: %v", err)
	}

	resp, err := structpb.NewStruct(map[string]interface{}{
		"product": productToMap(*product),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode product: %v", err)
	}
	return resp, nil
}

// structToValues turns string and number fields into criteria change events.
// Other kinds are dropped.
func structToValues(req *structpb.Struct) url.Values {
	values := url.Values{}
	for name, v := range req.GetFields() {
		switch kind := v.GetKind().(type) {
		case *structpb.Value_StringValue:
			values.Set(name, kind.StringValue)
		case *structpb.Value_NumberValue:
			values.Set(name, strconv.FormatFloat(kind.NumberValue, 'f', -1, 64))
		}
	}
	return values
}

func productToMap(p domain.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":              p.ID,
		"productName":     p.ProductName,
		"company":         p.Company,
		"category":        p.Category,
		"price":           p.Price,
		"rating":          p.Rating,
		"discountPercent": p.DiscountPercent,
		"availability":    p.Availability,
	}
}
