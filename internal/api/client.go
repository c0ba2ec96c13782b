package api

import (
	"context"

	"google.golang.org/grpc"
)

// Client calls BloodBankService over an existing connection using the JSON
// codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, "Register", in, opts)
}

func (c *Client) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, "Login", in, opts)
}

func (c *Client) Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, "Refresh", in, opts)
}

func (c *Client) Logout(ctx context.Context, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "Logout", &Empty{}, opts)
}

func (c *Client) ListAppointments(ctx context.Context, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, "ListAppointments", &Empty{}, opts)
}

func (c *Client) ScheduleAppointment(ctx context.Context, in *ScheduleAppointmentRequest, opts ...grpc.CallOption) (*AppointmentResponse, error) {
	return invoke[AppointmentResponse](ctx, c.cc, "ScheduleAppointment", in, opts)
}

func (c *Client) CancelAppointment(ctx context.Context, in *CancelAppointmentRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "CancelAppointment", in, opts)
}

func (c *Client) ListFacilities(ctx context.Context, opts ...grpc.CallOption) (*ListFacilitiesResponse, error) {
	return invoke[ListFacilitiesResponse](ctx, c.cc, "ListFacilities", &Empty{}, opts)
}

func (c *Client) SearchDonors(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchDonorsResponse, error) {
	return invoke[SearchDonorsResponse](ctx, c.cc, "SearchDonors", in, opts)
}

func (c *Client) SearchBanks(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchBanksResponse, error) {
	return invoke[SearchBanksResponse](ctx, c.cc, "SearchBanks", in, opts)
}

func (c *Client) BankMap(ctx context.Context, in *BankMapRequest, opts ...grpc.CallOption) (*BankMapResponse, error) {
	return invoke[BankMapResponse](ctx, c.cc, "BankMap", in, opts)
}

func (c *Client) BloodInventory(ctx context.Context, opts ...grpc.CallOption) (*BloodInventoryResponse, error) {
	return invoke[BloodInventoryResponse](ctx, c.cc, "BloodInventory", &Empty{}, opts)
}

func (c *Client) ListEligibilityQuestions(ctx context.Context, opts ...grpc.CallOption) (*ListEligibilityQuestionsResponse, error) {
	return invoke[ListEligibilityQuestionsResponse](ctx, c.cc, "ListEligibilityQuestions", &Empty{}, opts)
}

func (c *Client) CheckEligibility(ctx context.Context, in *CheckEligibilityRequest, opts ...grpc.CallOption) (*CheckEligibilityResponse, error) {
	return invoke[CheckEligibilityResponse](ctx, c.cc, "CheckEligibility", in, opts)
}

func (c *Client) SubmitBloodRequest(ctx context.Context, in *SubmitBloodRequestRequest, opts ...grpc.CallOption) (*BloodRequestResponse, error) {
	return invoke[BloodRequestResponse](ctx, c.cc, "SubmitBloodRequest", in, opts)
}

func (c *Client) GetProfile(ctx context.Context, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, "GetProfile", &Empty{}, opts)
}

func (c *Client) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, "UpdateProfile", in, opts)
}

func (c *Client) SubmitFeedback(ctx context.Context, in *SubmitFeedbackRequest, opts ...grpc.CallOption) (*FeedbackResponse, error) {
	return invoke[FeedbackResponse](ctx, c.cc, "SubmitFeedback", in, opts)
}

func (c *Client) HostCamp(ctx context.Context, in *HostCampRequest, opts ...grpc.CallOption) (*CampResponse, error) {
	return invoke[CampResponse](ctx, c.cc, "HostCamp", in, opts)
}
