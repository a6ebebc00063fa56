package lendflowv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "lendflow.v1.LendFlowService"

const (
	LendFlowService_OpenAccount_FullMethodName                 = "/" + ServiceName + "/OpenAccount"
	LendFlowService_GetAccount_FullMethodName                  = "/" + ServiceName + "/GetAccount"
	LendFlowService_CreateLoanProduct_FullMethodName           = "/" + ServiceName + "/CreateLoanProduct"
	LendFlowService_ListLoanProducts_FullMethodName            = "/" + ServiceName + "/ListLoanProducts"
	LendFlowService_SubmitApplication_FullMethodName           = "/" + ServiceName + "/SubmitApplication"
	LendFlowService_ApproveApplication_FullMethodName          = "/" + ServiceName + "/ApproveApplication"
	LendFlowService_RejectApplication_FullMethodName           = "/" + ServiceName + "/RejectApplication"
	LendFlowService_ListDisbursableApplications_FullMethodName = "/" + ServiceName + "/ListDisbursableApplications"
	LendFlowService_DisburseLoan_FullMethodName                = "/" + ServiceName + "/DisburseLoan"
	LendFlowService_GetDisbursement_FullMethodName             = "/" + ServiceName + "/GetDisbursement"
	LendFlowService_ApplyAdjustment_FullMethodName             = "/" + ServiceName + "/ApplyAdjustment"
	LendFlowService_ListAdjustments_FullMethodName             = "/" + ServiceName + "/ListAdjustments"
	LendFlowService_MarkInstallmentPaid_FullMethodName         = "/" + ServiceName + "/MarkInstallmentPaid"
	LendFlowService_MarkOverdueInstallments_FullMethodName     = "/" + ServiceName + "/MarkOverdueInstallments"
	LendFlowService_PreviewSchedule_FullMethodName             = "/" + ServiceName + "/PreviewSchedule"
	LendFlowService_GetPortfolioSummary_FullMethodName         = "/" + ServiceName + "/GetPortfolioSummary"
	LendFlowService_CreateBank_FullMethodName                  = "/" + ServiceName + "/CreateBank"
	LendFlowService_ListBanks_FullMethodName                   = "/" + ServiceName + "/ListBanks"
	LendFlowService_CreateLoanCategory_FullMethodName          = "/" + ServiceName + "/CreateLoanCategory"
	LendFlowService_ListLoanCategories_FullMethodName          = "/" + ServiceName + "/ListLoanCategories"
	LendFlowService_GetApplication_FullMethodName              = "/" + ServiceName + "/GetApplication"
	LendFlowService_ListApplications_FullMethodName            = "/" + ServiceName + "/ListApplications"
)

// LendFlowServiceServer is the server API for LendFlowService.
// Implementations must embed UnimplementedLendFlowServiceServer.
type LendFlowServiceServer interface {
	OpenAccount(context.Context, *OpenAccountRequest) (*OpenAccountResponse, error)
	GetAccount(context.Context, *GetAccountRequest) (*GetAccountResponse, error)
	CreateLoanProduct(context.Context, *CreateLoanProductRequest) (*CreateLoanProductResponse, error)
	ListLoanProducts(context.Context, *ListLoanProductsRequest) (*ListLoanProductsResponse, error)
	SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error)
	ApproveApplication(context.Context, *ReviewApplicationRequest) (*ReviewApplicationResponse, error)
	RejectApplication(context.Context, *ReviewApplicationRequest) (*ReviewApplicationResponse, error)
	ListDisbursableApplications(context.Context, *ListDisbursableApplicationsRequest) (*ListDisbursableApplicationsResponse, error)
	DisburseLoan(context.Context, *DisburseLoanRequest) (*DisburseLoanResponse, error)
	GetDisbursement(context.Context, *GetDisbursementRequest) (*GetDisbursementResponse, error)
	ApplyAdjustment(context.Context, *ApplyAdjustmentRequest) (*ApplyAdjustmentResponse, error)
	ListAdjustments(context.Context, *ListAdjustmentsRequest) (*ListAdjustmentsResponse, error)
	MarkInstallmentPaid(context.Context, *MarkInstallmentPaidRequest) (*MarkInstallmentPaidResponse, error)
	MarkOverdueInstallments(context.Context, *MarkOverdueInstallmentsRequest) (*MarkOverdueInstallmentsResponse, error)
	PreviewSchedule(context.Context, *PreviewScheduleRequest) (*PreviewScheduleResponse, error)
	GetPortfolioSummary(context.Context, *GetPortfolioSummaryRequest) (*GetPortfolioSummaryResponse, error)
	CreateBank(context.Context, *CreateBankRequest) (*CreateBankResponse, error)
	ListBanks(context.Context, *ListBanksRequest) (*ListBanksResponse, error)
	CreateLoanCategory(context.Context, *CreateLoanCategoryRequest) (*CreateLoanCategoryResponse, error)
	ListLoanCategories(context.Context, *ListLoanCategoriesRequest) (*ListLoanCategoriesResponse, error)
	GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	mustEmbedUnimplementedLendFlowServiceServer()
}

// UnimplementedLendFlowServiceServer returns Unimplemented for every RPC
type UnimplementedLendFlowServiceServer struct{}

func (UnimplementedLendFlowServiceServer) OpenAccount(context.Context, *OpenAccountRequest) (*OpenAccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OpenAccount not implemented")
}
func (UnimplementedLendFlowServiceServer) GetAccount(context.Context, *GetAccountRequest) (*GetAccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAccount not implemented")
}
func (UnimplementedLendFlowServiceServer) CreateLoanProduct(context.Context, *CreateLoanProductRequest) (*CreateLoanProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateLoanProduct not implemented")
}
func (UnimplementedLendFlowServiceServer) ListLoanProducts(context.Context, *ListLoanProductsRequest) (*ListLoanProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLoanProducts not implemented")
}
func (UnimplementedLendFlowServiceServer) SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitApplication not implemented")
}
func (UnimplementedLendFlowServiceServer) ApproveApplication(context.Context, *ReviewApplicationRequest) (*ReviewApplicationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApproveApplication not implemented")
}
func (UnimplementedLendFlowServiceServer) RejectApplication(context.Context, *ReviewApplicationRequest) (*ReviewApplicationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RejectApplication not implemented")
}
func (UnimplementedLendFlowServiceServer) ListDisbursableApplications(context.Context, *ListDisbursableApplicationsRequest) (*ListDisbursableApplicationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDisbursableApplications not implemented")
}
func (UnimplementedLendFlowServiceServer) DisburseLoan(context.Context, *DisburseLoanRequest) (*DisburseLoanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DisburseLoan not implemented")
}
func (UnimplementedLendFlowServiceServer) GetDisbursement(context.Context, *GetDisbursementRequest) (*GetDisbursementResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDisbursement not implemented")
}
func (UnimplementedLendFlowServiceServer) ApplyAdjustment(context.Context, *ApplyAdjustmentRequest) (*ApplyAdjustmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApplyAdjustment not implemented")
}
func (UnimplementedLendFlowServiceServer) ListAdjustments(context.Context, *ListAdjustmentsRequest) (*ListAdjustmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAdjustments not implemented")
}
func (UnimplementedLendFlowServiceServer) MarkInstallmentPaid(context.Context, *MarkInstallmentPaidRequest) (*MarkInstallmentPaidResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MarkInstallmentPaid not implemented")
}
func (UnimplementedLendFlowServiceServer) MarkOverdueInstallments(context.Context, *MarkOverdueInstallmentsRequest) (*MarkOverdueInstallmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MarkOverdueInstallments not implemented")
}
func (UnimplementedLendFlowServiceServer) PreviewSchedule(context.Context, *PreviewScheduleRequest) (*PreviewScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PreviewSchedule not implemented")
}
func (UnimplementedLendFlowServiceServer) GetPortfolioSummary(context.Context, *GetPortfolioSummaryRequest) (*GetPortfolioSummaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPortfolioSummary not implemented")
}
func (UnimplementedLendFlowServiceServer) CreateBank(context.Context, *CreateBankRequest) (*CreateBankResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBank not implemented")
}
func (UnimplementedLendFlowServiceServer) ListBanks(context.Context, *ListBanksRequest) (*ListBanksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBanks not implemented")
}
func (UnimplementedLendFlowServiceServer) CreateLoanCategory(context.Context, *CreateLoanCategoryRequest) (*CreateLoanCategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateLoanCategory not implemented")
}
func (UnimplementedLendFlowServiceServer) ListLoanCategories(context.Context, *ListLoanCategoriesRequest) (*ListLoanCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLoanCategories not implemented")
}
func (UnimplementedLendFlowServiceServer) GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedLendFlowServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedLendFlowServiceServer) mustEmbedUnimplementedLendFlowServiceServer() {}

// unary builds the method descriptor for one RPC, running the server's interceptor chain
func unary[Req, Resp any](name, fullMethod string, call func(LendFlowServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(LendFlowServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(LendFlowServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// LendFlowService_ServiceDesc is the grpc.ServiceDesc for LendFlowService
var LendFlowService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LendFlowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("OpenAccount", LendFlowService_OpenAccount_FullMethodName, LendFlowServiceServer.OpenAccount),
		unary("GetAccount", LendFlowService_GetAccount_FullMethodName, LendFlowServiceServer.GetAccount),
		unary("CreateLoanProduct", LendFlowService_CreateLoanProduct_FullMethodName, LendFlowServiceServer.CreateLoanProduct),
		unary("ListLoanProducts", LendFlowService_ListLoanProducts_FullMethodName, LendFlowServiceServer.ListLoanProducts),
		unary("SubmitApplication", LendFlowService_SubmitApplication_FullMethodName, LendFlowServiceServer.SubmitApplication),
		unary("ApproveApplication", LendFlowService_ApproveApplication_FullMethodName, LendFlowServiceServer.ApproveApplication),
		unary("RejectApplication", LendFlowService_RejectApplication_FullMethodName, LendFlowServiceServer.RejectApplication),
		unary("ListDisbursableApplications", LendFlowService_ListDisbursableApplications_FullMethodName, LendFlowServiceServer.ListDisbursableApplications),
		unary("DisburseLoan", LendFlowService_DisburseLoan_FullMethodName, LendFlowServiceServer.DisburseLoan),
		unary("GetDisbursement", LendFlowService_GetDisbursement_FullMethodName, LendFlowServiceServer.GetDisbursement),
		unary("ApplyAdjustment", LendFlowService_ApplyAdjustment_FullMethodName, LendFlowServiceServer.ApplyAdjustment),
		unary("ListAdjustments", LendFlowService_ListAdjustments_FullMethodName, LendFlowServiceServer.ListAdjustments),
		unary("MarkInstallmentPaid", LendFlowService_MarkInstallmentPaid_FullMethodName, LendFlowServiceServer.MarkInstallmentPaid),
		unary("MarkOverdueInstallments", LendFlowService_MarkOverdueInstallments_FullMethodName, LendFlowServiceServer.MarkOverdueInstallments),
		unary("PreviewSchedule", LendFlowService_PreviewSchedule_FullMethodName, LendFlowServiceServer.PreviewSchedule),
		unary("GetPortfolioSummary", LendFlowService_GetPortfolioSummary_FullMethodName, LendFlowServiceServer.GetPortfolioSummary),
		unary("CreateBank", LendFlowService_CreateBank_FullMethodName, LendFlowServiceServer.CreateBank),
		unary("ListBanks", LendFlowService_ListBanks_FullMethodName, LendFlowServiceServer.ListBanks),
		unary("CreateLoanCategory", LendFlowService_CreateLoanCategory_FullMethodName, LendFlowServiceServer.CreateLoanCategory),
		unary("ListLoanCategories", LendFlowService_ListLoanCategories_FullMethodName, LendFlowServiceServer.ListLoanCategories),
		unary("GetApplication", LendFlowService_GetApplication_FullMethodName, LendFlowServiceServer.GetApplication),
		unary("ListApplications", LendFlowService_ListApplications_FullMethodName, LendFlowServiceServer.ListApplications),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lendflow/v1/lendflow.proto",
}

// RegisterLendFlowServiceServer registers srv on s
func RegisterLendFlowServiceServer(s grpc.ServiceRegistrar, srv LendFlowServiceServer) {
	s.RegisterService(&LendFlowService_ServiceDesc, srv)
}

// LendFlowServiceClient is the client API for LendFlowService.
// Every call uses the JSON codec.
type LendFlowServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLendFlowServiceClient creates a client over cc
func NewLendFlowServiceClient(cc grpc.ClientConnInterface) *LendFlowServiceClient {
	return &LendFlowServiceClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, c *LendFlowServiceClient, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LendFlowServiceClient) OpenAccount(ctx context.Context, in *OpenAccountRequest, opts ...grpc.CallOption) (*OpenAccountResponse, error) {
	return invoke[OpenAccountRequest, OpenAccountResponse](ctx, c, LendFlowService_OpenAccount_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountResponse, error) {
	return invoke[GetAccountRequest, GetAccountResponse](ctx, c, LendFlowService_GetAccount_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) CreateLoanProduct(ctx context.Context, in *CreateLoanProductRequest, opts ...grpc.CallOption) (*CreateLoanProductResponse, error) {
	return invoke[CreateLoanProductRequest, CreateLoanProductResponse](ctx, c, LendFlowService_CreateLoanProduct_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) ListLoanProducts(ctx context.Context, in *ListLoanProductsRequest, opts ...grpc.CallOption) (*ListLoanProductsResponse, error) {
	return invoke[ListLoanProductsRequest, ListLoanProductsResponse](ctx, c, LendFlowService_ListLoanProducts_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) SubmitApplication(ctx context.Context, in *SubmitApplicationRequest, opts ...grpc.CallOption) (*SubmitApplicationResponse, error) {
	return invoke[SubmitApplicationRequest, SubmitApplicationResponse](ctx, c, LendFlowService_SubmitApplication_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) ApproveApplication(ctx context.Context, in *ReviewApplicationRequest, opts ...grpc.CallOption) (*ReviewApplicationResponse, error) {
	return invoke[ReviewApplicationRequest, ReviewApplicationResponse](ctx, c, LendFlowService_ApproveApplication_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) RejectApplication(ctx context.Context, in *ReviewApplicationRequest, opts ...grpc.CallOption) (*ReviewApplicationResponse, error) {
	return invoke[ReviewApplicationRequest, ReviewApplicationResponse](ctx, c, LendFlowService_RejectApplication_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) ListDisbursableApplications(ctx context.Context, in *ListDisbursableApplicationsRequest, opts ...grpc.CallOption) (*ListDisbursableApplicationsResponse, error) {
	return invoke[ListDisbursableApplicationsRequest, ListDisbursableApplicationsResponse](ctx, c, LendFlowService_ListDisbursableApplications_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) DisburseLoan(ctx context.Context, in *DisburseLoanRequest, opts ...grpc.CallOption) (*DisburseLoanResponse, error) {
	return invoke[DisburseLoanRequest, DisburseLoanResponse](ctx, c, LendFlowService_DisburseLoan_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) GetDisbursement(ctx context.Context, in *GetDisbursementRequest, opts ...grpc.CallOption) (*GetDisbursementResponse, error) {
	return invoke[GetDisbursementRequest, GetDisbursementResponse](ctx, c, LendFlowService_GetDisbursement_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) ApplyAdjustment(ctx context.Context, in *ApplyAdjustmentRequest, opts ...grpc.CallOption) (*ApplyAdjustmentResponse, error) {
	return invoke[ApplyAdjustmentRequest, ApplyAdjustmentResponse](ctx, c, LendFlowService_ApplyAdjustment_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) ListAdjustments(ctx context.Context, in *ListAdjustmentsRequest, opts ...grpc.CallOption) (*ListAdjustmentsResponse, error) {
	return invoke[ListAdjustmentsRequest, ListAdjustmentsResponse](ctx, c, LendFlowService_ListAdjustments_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) MarkInstallmentPaid(ctx context.Context, in *MarkInstallmentPaidRequest, opts ...grpc.CallOption) (*MarkInstallmentPaidResponse, error) {
	return invoke[MarkInstallmentPaidRequest, MarkInstallmentPaidResponse](ctx, c, LendFlowService_MarkInstallmentPaid_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) MarkOverdueInstallments(ctx context.Context, in *MarkOverdueInstallmentsRequest, opts ...grpc.CallOption) (*MarkOverdueInstallmentsResponse, error) {
	return invoke[MarkOverdueInstallmentsRequest, MarkOverdueInstallmentsResponse](ctx, c, LendFlowService_MarkOverdueInstallments_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) PreviewSchedule(ctx context.Context, in *PreviewScheduleRequest, opts ...grpc.CallOption) (*PreviewScheduleResponse, error) {
	return invoke[PreviewScheduleRequest, PreviewScheduleResponse](ctx, c, LendFlowService_PreviewSchedule_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) GetPortfolioSummary(ctx context.Context, in *GetPortfolioSummaryRequest, opts ...grpc.CallOption) (*GetPortfolioSummaryResponse, error) {
	return invoke[GetPortfolioSummaryRequest, GetPortfolioSummaryResponse](ctx, c, LendFlowService_GetPortfolioSummary_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) CreateBank(ctx context.Context, in *CreateBankRequest, opts ...grpc.CallOption) (*CreateBankResponse, error) {
	return invoke[CreateBankRequest, CreateBankResponse](ctx, c, LendFlowService_CreateBank_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) ListBanks(ctx context.Context, in *ListBanksRequest, opts ...grpc.CallOption) (*ListBanksResponse, error) {
	return invoke[ListBanksRequest, ListBanksResponse](ctx, c, LendFlowService_ListBanks_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) CreateLoanCategory(ctx context.Context, in *CreateLoanCategoryRequest, opts ...grpc.CallOption) (*CreateLoanCategoryResponse, error) {
	return invoke[CreateLoanCategoryRequest, CreateLoanCategoryResponse](ctx, c, LendFlowService_CreateLoanCategory_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) ListLoanCategories(ctx context.Context, in *ListLoanCategoriesRequest, opts ...grpc.CallOption) (*ListLoanCategoriesResponse, error) {
	return invoke[ListLoanCategoriesRequest, ListLoanCategoriesResponse](ctx, c, LendFlowService_ListLoanCategories_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) GetApplication(ctx context.Context, in *GetApplicationRequest, opts ...grpc.CallOption) (*GetApplicationResponse, error) {
	return invoke[GetApplicationRequest, GetApplicationResponse](ctx, c, LendFlowService_GetApplication_FullMethodName, in, opts)
}

func (c *LendFlowServiceClient) ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error) {
	return invoke[ListApplicationsRequest, ListApplicationsResponse](ctx, c, LendFlowService_ListApplications_FullMethodName, in, opts)
}
