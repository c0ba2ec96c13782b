// Package api declares the bloodbank.v1.BloodBankService gRPC contract: its
// messages, server interface, service descriptor and client. Messages are
// plain Go structs carried by the JSON codec.
package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "bloodbank.v1.BloodBankService"

// FullMethod returns "/bloodbank.v1.BloodBankService/<method>".
func FullMethod(method string) string { return "/" + ServiceName + "/" + method }

type BloodBankServiceServer interface {
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	Refresh(context.Context, *RefreshRequest) (*AuthResponse, error)
	Logout(context.Context, *Empty) (*Empty, error)

	ListAppointments(context.Context, *Empty) (*ListAppointmentsResponse, error)
	ScheduleAppointment(context.Context, *ScheduleAppointmentRequest) (*AppointmentResponse, error)
	CancelAppointment(context.Context, *CancelAppointmentRequest) (*Empty, error)
	ListFacilities(context.Context, *Empty) (*ListFacilitiesResponse, error)

	SearchDonors(context.Context, *SearchRequest) (*SearchDonorsResponse, error)
	SearchBanks(context.Context, *SearchRequest) (*SearchBanksResponse, error)
	BankMap(context.Context, *BankMapRequest) (*BankMapResponse, error)
	BloodInventory(context.Context, *Empty) (*BloodInventoryResponse, error)

	ListEligibilityQuestions(context.Context, *Empty) (*ListEligibilityQuestionsResponse, error)
	CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error)

	SubmitBloodRequest(context.Context, *SubmitBloodRequestRequest) (*BloodRequestResponse, error)
	GetProfile(context.Context, *Empty) (*ProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*ProfileResponse, error)
	SubmitFeedback(context.Context, *SubmitFeedbackRequest) (*FeedbackResponse, error)
	HostCamp(context.Context, *HostCampRequest) (*CampResponse, error)

	mustEmbedUnimplemented()
}

// UnimplementedBloodBankServiceServer must be embedded by implementations.
type UnimplementedBloodBankServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedBloodBankServiceServer) Register(context.Context, *RegisterRequest) (*AuthResponse, error) {
	return nil, unimplemented("Register")
}
func (UnimplementedBloodBankServiceServer) Login(context.Context, *LoginRequest) (*AuthResponse, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedBloodBankServiceServer) Refresh(context.Context, *RefreshRequest) (*AuthResponse, error) {
	return nil, unimplemented("Refresh")
}
func (UnimplementedBloodBankServiceServer) Logout(context.Context, *Empty) (*Empty, error) {
	return nil, unimplemented("Logout")
}
func (UnimplementedBloodBankServiceServer) ListAppointments(context.Context, *Empty) (*ListAppointmentsResponse, error) {
	return nil, unimplemented("ListAppointments")
}
func (UnimplementedBloodBankServiceServer) ScheduleAppointment(context.Context, *ScheduleAppointmentRequest) (*AppointmentResponse, error) {
	return nil, unimplemented("ScheduleAppointment")
}
func (UnimplementedBloodBankServiceServer) CancelAppointment(context.Context, *CancelAppointmentRequest) (*Empty, error) {
	return nil, unimplemented("CancelAppointment")
}
func (UnimplementedBloodBankServiceServer) ListFacilities(context.Context, *Empty) (*ListFacilitiesResponse, error) {
	return nil, unimplemented("ListFacilities")
}
func (UnimplementedBloodBankServiceServer) SearchDonors(context.Context, *SearchRequest) (*SearchDonorsResponse, error) {
	return nil, unimplemented("SearchDonors")
}
func (UnimplementedBloodBankServiceServer) SearchBanks(context.Context, *SearchRequest) (*SearchBanksResponse, error) {
	return nil, unimplemented("SearchBanks")
}
func (UnimplementedBloodBankServiceServer) BankMap(context.Context, *BankMapRequest) (*BankMapResponse, error) {
	return nil, unimplemented("BankMap")
}
func (UnimplementedBloodBankServiceServer) BloodInventory(context.Context, *Empty) (*BloodInventoryResponse, error) {
	return nil, unimplemented("BloodInventory")
}
func (UnimplementedBloodBankServiceServer) ListEligibilityQuestions(context.Context, *Empty) (*ListEligibilityQuestionsResponse, error) {
	return nil, unimplemented("ListEligibilityQuestions")
}
func (UnimplementedBloodBankServiceServer) CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error) {
	return nil, unimplemented("CheckEligibility")
}
func (UnimplementedBloodBankServiceServer) SubmitBloodRequest(context.Context, *SubmitBloodRequestRequest) (*BloodRequestResponse, error) {
	return nil, unimplemented("SubmitBloodRequest")
}
func (UnimplementedBloodBankServiceServer) GetProfile(context.Context, *Empty) (*ProfileResponse, error) {
	return nil, unimplemented("GetProfile")
}
func (UnimplementedBloodBankServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*ProfileResponse, error) {
	return nil, unimplemented("UpdateProfile")
}
func (UnimplementedBloodBankServiceServer) SubmitFeedback(context.Context, *SubmitFeedbackRequest) (*FeedbackResponse, error) {
	return nil, unimplemented("SubmitFeedback")
}
func (UnimplementedBloodBankServiceServer) HostCamp(context.Context, *HostCampRequest) (*CampResponse, error) {
	return nil, unimplemented("HostCamp")
}
func (UnimplementedBloodBankServiceServer) mustEmbedUnimplemented() {}

// unary builds the MethodDesc for one RPC, mirroring what protoc-gen-go-grpc
// emits per method.
func unary[Req, Resp any](name string, call func(BloodBankServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	full := FullMethod(name)
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				// grpc reports codec failures as Internal; a bad body is the caller's fault
				return nil, status.Errorf(codes.InvalidArgument, "malformed %s request: %s", name, status.Convert(err).Message())
			}
			if interceptor == nil {
				return call(srv.(BloodBankServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BloodBankServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BloodBankServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Register", BloodBankServiceServer.Register),
		unary("Login", BloodBankServiceServer.Login),
		unary("Refresh", BloodBankServiceServer.Refresh),
		unary("Logout", BloodBankServiceServer.Logout),
		unary("ListAppointments", BloodBankServiceServer.ListAppointments),
		unary("ScheduleAppointment", BloodBankServiceServer.ScheduleAppointment),
		unary("CancelAppointment", BloodBankServiceServer.CancelAppointment),
		unary("ListFacilities", BloodBankServiceServer.ListFacilities),
		unary("SearchDonors", BloodBankServiceServer.SearchDonors),
		unary("SearchBanks", BloodBankServiceServer.SearchBanks),
		unary("BankMap", BloodBankServiceServer.BankMap),
		unary("BloodInventory", BloodBankServiceServer.BloodInventory),
		unary("ListEligibilityQuestions", BloodBankServiceServer.ListEligibilityQuestions),
		unary("CheckEligibility", BloodBankServiceServer.CheckEligibility),
		unary("SubmitBloodRequest", BloodBankServiceServer.SubmitBloodRequest),
		unary("GetProfile", BloodBankServiceServer.GetProfile),
		unary("UpdateProfile", BloodBankServiceServer.UpdateProfile),
		unary("SubmitFeedback", BloodBankServiceServer.SubmitFeedback),
		unary("HostCamp", BloodBankServiceServer.HostCamp),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bloodbank/v1/bloodbank.json",
}

func RegisterBloodBankServiceServer(s grpc.ServiceRegistrar, srv BloodBankServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
