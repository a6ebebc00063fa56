package grpc

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	lendflowv1 "github.com/simaogato/lendflow-backend/internal/adapter/grpc/lendflowv1"
)

// Metadata keys carrying the caller identity
const (
	ActorIDHeader   = "x-actor-id"
	ActorRoleHeader = "x-actor-role"
)

// Role is the caller's role as asserted by the identity layer in front of the service
type Role string

const (
	RoleSuperAdmin   Role = "superadmin"
	RoleAdmin        Role = "admin"
	RoleBank         Role = "bank"
	RoleBankEmployee Role = "bank_employee"
	RoleRegulator    Role = "regulator"
)

// Actor is the authenticated caller of an RPC
type Actor struct {
	ID   string
	Role Role
}

type actorKey struct{}

// ActorFromContext returns the actor stored by ActorInterceptor
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}

// Policy maps a full gRPC method name to the roles allowed to call it
type Policy map[string][]Role

func (p Policy) allows(method string, role Role) bool {
	for _, allowed := range p[method] {
		if allowed == role {
			return true
		}
	}
	return false
}

// DefaultPolicy lets bank staff run the loan book and regulators read it.
// Platform admins register banks and may also see the portfolio and the reference data.
func DefaultPolicy() Policy {
	readOnly := []string{
		lendflowv1.LendFlowService_GetAccount_FullMethodName,
		lendflowv1.LendFlowService_ListLoanProducts_FullMethodName,
		lendflowv1.LendFlowService_GetApplication_FullMethodName,
		lendflowv1.LendFlowService_ListApplications_FullMethodName,
		lendflowv1.LendFlowService_ListDisbursableApplications_FullMethodName,
		lendflowv1.LendFlowService_GetDisbursement_FullMethodName,
		lendflowv1.LendFlowService_ListAdjustments_FullMethodName,
		lendflowv1.LendFlowService_PreviewSchedule_FullMethodName,
		lendflowv1.LendFlowService_GetPortfolioSummary_FullMethodName,
	}
	writes := []string{
		lendflowv1.LendFlowService_OpenAccount_FullMethodName,
		lendflowv1.LendFlowService_CreateLoanProduct_FullMethodName,
		lendflowv1.LendFlowService_SubmitApplication_FullMethodName,
		lendflowv1.LendFlowService_ApproveApplication_FullMethodName,
		lendflowv1.LendFlowService_RejectApplication_FullMethodName,
		lendflowv1.LendFlowService_DisburseLoan_FullMethodName,
		lendflowv1.LendFlowService_ApplyAdjustment_FullMethodName,
		lendflowv1.LendFlowService_MarkInstallmentPaid_FullMethodName,
		lendflowv1.LendFlowService_MarkOverdueInstallments_FullMethodName,
	}

	policy := Policy{}
	for _, method := range writes {
		policy[method] = []Role{RoleBank, RoleBankEmployee}
	}
	for _, method := range readOnly {
		policy[method] = []Role{RoleBank, RoleBankEmployee, RoleRegulator}
	}
	policy[lendflowv1.LendFlowService_CreateBank_FullMethodName] = []Role{RoleSuperAdmin, RoleAdmin}
	policy[lendflowv1.LendFlowService_CreateLoanCategory_FullMethodName] = []Role{RoleSuperAdmin, RoleAdmin, RoleBank, RoleBankEmployee}

	everyone := []Role{RoleSuperAdmin, RoleAdmin, RoleBank, RoleBankEmployee, RoleRegulator}
	for _, method := range []string{
		lendflowv1.LendFlowService_GetPortfolioSummary_FullMethodName,
		lendflowv1.LendFlowService_ListBanks_FullMethodName,
		lendflowv1.LendFlowService_ListLoanCategories_FullMethodName,
	} {
		policy[method] = everyone
	}
	return policy
}

// AuthInterceptor returns a gRPC unary server interceptor that validates
// the authorization token from request metadata.
// If the token is missing or invalid, it returns status.Unauthenticated.
// A "Bearer " prefix is accepted.
func AuthInterceptor(validToken string) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		if strings.TrimPrefix(authHeaders[0], "Bearer ") != validToken {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(ctx, req)
	}
}

// ActorInterceptor reads the caller identity from x-actor-id and x-actor-role,
// rejects roles the policy does not allow for the method, and stores the Actor in the context.
// It must run after AuthInterceptor.
func ActorInterceptor(policy Policy) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, _ := metadata.FromIncomingContext(ctx)

		actor := Actor{
			ID:   firstValue(md, ActorIDHeader),
			Role: Role(firstValue(md, ActorRoleHeader)),
		}
		if actor.ID == "" {
			return nil, status.Errorf(codes.Unauthenticated, "missing %s header", ActorIDHeader)
		}
		if !policy.allows(info.FullMethod, actor.Role) {
			return nil, status.Errorf(codes.PermissionDenied, "role %q may not call %s", actor.Role, info.FullMethod)
		}

		return handler(context.WithValue(ctx, actorKey{}, actor), req)
	}
}

func firstValue(md metadata.MD, key string) string {
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}
