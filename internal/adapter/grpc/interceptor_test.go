package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	lendflowv1 "github.com/simaogato/lendflow-backend/internal/adapter/grpc/lendflowv1"
)

func TestAuthInterceptor(t *testing.T) {
	validToken := "test-token-123"
	interceptor := AuthInterceptor(validToken)

	tests := []struct {
		name           string
		ctx            context.Context
		handlerCalled  bool
		expectedCode   codes.Code
		expectedErrMsg string
	}{
		{
			name: "Valid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", validToken),
			),
			handlerCalled: true,
			expectedCode:  codes.OK,
		},
		{
			name: "Valid Bearer Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "Bearer "+validToken),
			),
			handlerCalled: true,
			expectedCode:  codes.OK,
		},
		{
			name: "Invalid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "wrong-token"),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "invalid token",
		},
		{
			name:           "Missing Token",
			ctx:            context.Background(),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing metadata",
		},
		{
			name: "Missing Authorization Header",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("other-header", "value"),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing authorization header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				handlerCalled = true
				return "success", nil
			}

			info := &grpc.UnaryServerInfo{
				FullMethod: "/test.Service/Method",
			}

			resp, err := interceptor(tt.ctx, "test-request", info, handler)

			assert.Equal(t, tt.handlerCalled, handlerCalled, "handler called status mismatch")

			if tt.expectedCode == codes.OK {
				assert.NoError(t, err)
				assert.Equal(t, "success", resp)
			} else {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok, "error should be a gRPC status")
				assert.Equal(t, tt.expectedCode, st.Code())
				assert.Contains(t, st.Message(), tt.expectedErrMsg)
			}
		})
	}
}

func TestActorInterceptor(t *testing.T) {
	interceptor := ActorInterceptor(DefaultPolicy())

	tests := []struct {
		name         string
		method       string
		md           metadata.MD
		expectedCode codes.Code
		expectedRole Role
	}{
		{
			name:         "bank employee disburses",
			method:       lendflowv1.LendFlowService_DisburseLoan_FullMethodName,
			md:           metadata.Pairs(ActorIDHeader, "emp-1", ActorRoleHeader, "bank_employee"),
			expectedCode: codes.OK,
			expectedRole: RoleBankEmployee,
		},
		{
			name:         "regulator reads adjustments",
			method:       lendflowv1.LendFlowService_ListAdjustments_FullMethodName,
			md:           metadata.Pairs(ActorIDHeader, "reg-1", ActorRoleHeader, "regulator"),
			expectedCode: codes.OK,
			expectedRole: RoleRegulator,
		},
		{
			name:         "regulator cannot approve",
			method:       lendflowv1.LendFlowService_ApproveApplication_FullMethodName,
			md:           metadata.Pairs(ActorIDHeader, "reg-1", ActorRoleHeader, "regulator"),
			expectedCode: codes.PermissionDenied,
		},
		{
			name:         "admin reads portfolio",
			method:       lendflowv1.LendFlowService_GetPortfolioSummary_FullMethodName,
			md:           metadata.Pairs(ActorIDHeader, "admin-1", ActorRoleHeader, "admin"),
			expectedCode: codes.OK,
			expectedRole: RoleAdmin,
		},
		{
			name:         "regulator lists applications",
			method:       lendflowv1.LendFlowService_ListApplications_FullMethodName,
			md:           metadata.Pairs(ActorIDHeader, "reg-1", ActorRoleHeader, "regulator"),
			expectedCode: codes.OK,
			expectedRole: RoleRegulator,
		},
		{
			name:         "superadmin registers banks",
			method:       lendflowv1.LendFlowService_CreateBank_FullMethodName,
			md:           metadata.Pairs(ActorIDHeader, "root", ActorRoleHeader, "superadmin"),
			expectedCode: codes.OK,
			expectedRole: RoleSuperAdmin,
		},
		{
			name:         "bank cannot register banks",
			method:       lendflowv1.LendFlowService_CreateBank_FullMethodName,
			md:           metadata.Pairs(ActorIDHeader, "mgr-1", ActorRoleHeader, "bank"),
			expectedCode: codes.PermissionDenied,
		},
		{
			name:         "regulator cannot add categories",
			method:       lendflowv1.LendFlowService_CreateLoanCategory_FullMethodName,
			md:           metadata.Pairs(ActorIDHeader, "reg-1", ActorRoleHeader, "regulator"),
			expectedCode: codes.PermissionDenied,
		},
		{
			name:         "superadmin cannot open accounts",
			method:       lendflowv1.LendFlowService_OpenAccount_FullMethodName,
			md:           metadata.Pairs(ActorIDHeader, "admin-1", ActorRoleHeader, "superadmin"),
			expectedCode: codes.PermissionDenied,
		},
		{
			name:         "unknown role",
			method:       lendflowv1.LendFlowService_GetAccount_FullMethodName,
			md:           metadata.Pairs(ActorIDHeader, "x", ActorRoleHeader, "borrower"),
			expectedCode: codes.PermissionDenied,
		},
		{
			name:         "method outside the policy",
			method:       "/test.Service/Method",
			md:           metadata.Pairs(ActorIDHeader, "emp-1", ActorRoleHeader, "bank"),
			expectedCode: codes.PermissionDenied,
		},
		{
			name:         "missing actor id",
			method:       lendflowv1.LendFlowService_GetAccount_FullMethodName,
			md:           metadata.Pairs(ActorRoleHeader, "bank"),
			expectedCode: codes.Unauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen Actor
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				actor, ok := ActorFromContext(ctx)
				require.True(t, ok)
				seen = actor
				return "success", nil
			}

			ctx := metadata.NewIncomingContext(context.Background(), tt.md)
			_, err := interceptor(ctx, "req", &grpc.UnaryServerInfo{FullMethod: tt.method}, handler)

			assert.Equal(t, tt.expectedCode, status.Code(err))
			if tt.expectedCode == codes.OK {
				assert.Equal(t, tt.expectedRole, seen.Role)
				assert.NotEmpty(t, seen.ID)
			}
		})
	}
}
