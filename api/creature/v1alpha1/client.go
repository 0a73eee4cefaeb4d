package creaturev1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// CreatureServiceClient is the client API for the creature service
type CreatureServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	CreateCreature(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*SaveResponse, error)
	SaveDraft(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*SaveResponse, error)
	Autosave(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*AutosaveResponse, error)
	SubmitCreature(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*SaveResponse, error)
	GetCreature(ctx context.Context, in *GetCreatureRequest, opts ...grpc.CallOption) (*GetCreatureResponse, error)
	UpdateCreature(ctx context.Context, in *UpdateCreatureRequest, opts ...grpc.CallOption) (*UpdateCreatureResponse, error)
	DeleteCreature(ctx context.Context, in *DeleteCreatureRequest, opts ...grpc.CallOption) (*DeleteCreatureResponse, error)
	ListCreatures(ctx context.Context, in *ListCreaturesRequest, opts ...grpc.CallOption) (*ListCreaturesResponse, error)
	GetEditSession(ctx context.Context, in *GetEditSessionRequest, opts ...grpc.CallOption) (*GetEditSessionResponse, error)
	UploadDrawing(ctx context.Context, in *UploadDrawingRequest, opts ...grpc.CallOption) (*UploadDrawingResponse, error)
	DescribeDrawing(ctx context.Context, in *DescribeDrawingRequest, opts ...grpc.CallOption) (*DescribeDrawingResponse, error)
	GenerateArtwork(ctx context.Context, in *GenerateArtworkRequest, opts ...grpc.CallOption) (*GenerateArtworkResponse, error)
}

type creatureServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCreatureServiceClient creates a client that speaks the JSON codec
func NewCreatureServiceClient(cc grpc.ClientConnInterface) CreatureServiceClient {
	return &creatureServiceClient{cc: cc}
}

func (c *creatureServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{
		grpc.CallContentSubtype(CodecName),
		grpc.MaxCallSendMsgSize(MaxMessageBytes),
		grpc.MaxCallRecvMsgSize(MaxMessageBytes),
	}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *creatureServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.invoke(ctx, CreatureService_Register_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.invoke(ctx, CreatureService_Login_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	out := new(LogoutResponse)
	if err := c.invoke(ctx, CreatureService_Logout_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) CreateCreature(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*SaveResponse, error) {
	out := new(SaveResponse)
	if err := c.invoke(ctx, CreatureService_CreateCreature_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) SaveDraft(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*SaveResponse, error) {
	out := new(SaveResponse)
	if err := c.invoke(ctx, CreatureService_SaveDraft_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) Autosave(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*AutosaveResponse, error) {
	out := new(AutosaveResponse)
	if err := c.invoke(ctx, CreatureService_Autosave_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) SubmitCreature(ctx context.Context, in *SaveRequest, opts ...grpc.CallOption) (*SaveResponse, error) {
	out := new(SaveResponse)
	if err := c.invoke(ctx, CreatureService_SubmitCreature_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) GetCreature(ctx context.Context, in *GetCreatureRequest, opts ...grpc.CallOption) (*GetCreatureResponse, error) {
	out := new(GetCreatureResponse)
	if err := c.invoke(ctx, CreatureService_GetCreature_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) UpdateCreature(ctx context.Context, in *UpdateCreatureRequest, opts ...grpc.CallOption) (*UpdateCreatureResponse, error) {
	out := new(UpdateCreatureResponse)
	if err := c.invoke(ctx, CreatureService_UpdateCreature_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) DeleteCreature(ctx context.Context, in *DeleteCreatureRequest, opts ...grpc.CallOption) (*DeleteCreatureResponse, error) {
	out := new(DeleteCreatureResponse)
	if err := c.invoke(ctx, CreatureService_DeleteCreature_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) ListCreatures(ctx context.Context, in *ListCreaturesRequest, opts ...grpc.CallOption) (*ListCreaturesResponse, error) {
	out := new(ListCreaturesResponse)
	if err := c.invoke(ctx, CreatureService_ListCreatures_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) GetEditSession(ctx context.Context, in *GetEditSessionRequest, opts ...grpc.CallOption) (*GetEditSessionResponse, error) {
	out := new(GetEditSessionResponse)
	if err := c.invoke(ctx, CreatureService_GetEditSession_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) UploadDrawing(ctx context.Context, in *UploadDrawingRequest, opts ...grpc.CallOption) (*UploadDrawingResponse, error) {
	out := new(UploadDrawingResponse)
	if err := c.invoke(ctx, CreatureService_UploadDrawing_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) DescribeDrawing(ctx context.Context, in *DescribeDrawingRequest, opts ...grpc.CallOption) (*DescribeDrawingResponse, error) {
	out := new(DescribeDrawingResponse)
	if err := c.invoke(ctx, CreatureService_DescribeDrawing_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *creatureServiceClient) GenerateArtwork(ctx context.Context, in *GenerateArtworkRequest, opts ...grpc.CallOption) (*GenerateArtworkResponse, error) {
	out := new(GenerateArtworkResponse)
	if err := c.invoke(ctx, CreatureService_GenerateArtwork_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
