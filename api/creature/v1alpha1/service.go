package creaturev1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "creature.v1alpha1.CreatureService"

// Full method names
const (
	CreatureService_Register_FullMethodName        = "/" + ServiceName + "/Register"
	CreatureService_Login_FullMethodName           = "/" + ServiceName + "/Login"
	CreatureService_Logout_FullMethodName          = "/" + ServiceName + "/Logout"
	CreatureService_CreateCreature_FullMethodName  = "/" + ServiceName + "/CreateCreature"
	CreatureService_SaveDraft_FullMethodName       = "/" + ServiceName + "/SaveDraft"
	CreatureService_Autosave_FullMethodName        = "/" + ServiceName + "/Autosave"
	CreatureService_SubmitCreature_FullMethodName  = "/" + ServiceName + "/SubmitCreature"
	CreatureService_GetCreature_FullMethodName     = "/" + ServiceName + "/GetCreature"
	CreatureService_UpdateCreature_FullMethodName  = "/" + ServiceName + "/UpdateCreature"
	CreatureService_DeleteCreature_FullMethodName  = "/" + ServiceName + "/DeleteCreature"
	CreatureService_ListCreatures_FullMethodName   = "/" + ServiceName + "/ListCreatures"
	CreatureService_GetEditSession_FullMethodName  = "/" + ServiceName + "/GetEditSession"
	CreatureService_UploadDrawing_FullMethodName   = "/" + ServiceName + "/UploadDrawing"
	CreatureService_DescribeDrawing_FullMethodName = "/" + ServiceName + "/DescribeDrawing"
	CreatureService_GenerateArtwork_FullMethodName = "/" + ServiceName + "/GenerateArtwork"
)

// CreatureServiceServer is the server API for the creature service
type CreatureServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	CreateCreature(context.Context, *SaveRequest) (*SaveResponse, error)
	SaveDraft(context.Context, *SaveRequest) (*SaveResponse, error)
	Autosave(context.Context, *SaveRequest) (*AutosaveResponse, error)
	SubmitCreature(context.Context, *SaveRequest) (*SaveResponse, error)
	GetCreature(context.Context, *GetCreatureRequest) (*GetCreatureResponse, error)
	UpdateCreature(context.Context, *UpdateCreatureRequest) (*UpdateCreatureResponse, error)
	DeleteCreature(context.Context, *DeleteCreatureRequest) (*DeleteCreatureResponse, error)
	ListCreatures(context.Context, *ListCreaturesRequest) (*ListCreaturesResponse, error)
	GetEditSession(context.Context, *GetEditSessionRequest) (*GetEditSessionResponse, error)
	UploadDrawing(context.Context, *UploadDrawingRequest) (*UploadDrawingResponse, error)
	DescribeDrawing(context.Context, *DescribeDrawingRequest) (*DescribeDrawingResponse, error)
	GenerateArtwork(context.Context, *GenerateArtworkRequest) (*GenerateArtworkResponse, error)
}

// UnimplementedCreatureServiceServer can be embedded to satisfy
// CreatureServiceServer while methods are added
type UnimplementedCreatureServiceServer struct{}

func (UnimplementedCreatureServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}

func (UnimplementedCreatureServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedCreatureServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}

func (UnimplementedCreatureServiceServer) CreateCreature(context.Context, *SaveRequest) (*SaveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCreature not implemented")
}

func (UnimplementedCreatureServiceServer) SaveDraft(context.Context, *SaveRequest) (*SaveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveDraft not implemented")
}

func (UnimplementedCreatureServiceServer) Autosave(context.Context, *SaveRequest) (*AutosaveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Autosave not implemented")
}

func (UnimplementedCreatureServiceServer) SubmitCreature(context.Context, *SaveRequest) (*SaveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitCreature not implemented")
}

func (UnimplementedCreatureServiceServer) GetCreature(context.Context, *GetCreatureRequest) (*GetCreatureResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCreature not implemented")
}

func (UnimplementedCreatureServiceServer) UpdateCreature(context.Context, *UpdateCreatureRequest) (*UpdateCreatureResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCreature not implemented")
}

func (UnimplementedCreatureServiceServer) DeleteCreature(context.Context, *DeleteCreatureRequest) (*DeleteCreatureResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCreature not implemented")
}

func (UnimplementedCreatureServiceServer) ListCreatures(context.Context, *ListCreaturesRequest) (*ListCreaturesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCreatures not implemented")
}

func (UnimplementedCreatureServiceServer) GetEditSession(context.Context, *GetEditSessionRequest) (*GetEditSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEditSession not implemented")
}

func (UnimplementedCreatureServiceServer) UploadDrawing(context.Context, *UploadDrawingRequest) (*UploadDrawingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadDrawing not implemented")
}

func (UnimplementedCreatureServiceServer) DescribeDrawing(context.Context, *DescribeDrawingRequest) (*DescribeDrawingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DescribeDrawing not implemented")
}

func (UnimplementedCreatureServiceServer) GenerateArtwork(context.Context, *GenerateArtworkRequest) (*GenerateArtworkResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateArtwork not implemented")
}

// RegisterCreatureServiceServer registers srv on s
func RegisterCreatureServiceServer(s grpc.ServiceRegistrar, srv CreatureServiceServer) {
	s.RegisterService(&CreatureService_ServiceDesc, srv)
}

// unaryHandler adapts one typed server method to a grpc.MethodHandler
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(CreatureServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CreatureServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CreatureServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CreatureService_ServiceDesc is the grpc.ServiceDesc for the creature service
var CreatureService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CreatureServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    unaryHandler(CreatureService_Register_FullMethodName, CreatureServiceServer.Register),
		},
		{
			MethodName: "Login",
			Handler:    unaryHandler(CreatureService_Login_FullMethodName, CreatureServiceServer.Login),
		},
		{
			MethodName: "Logout",
			Handler:    unaryHandler(CreatureService_Logout_FullMethodName, CreatureServiceServer.Logout),
		},
		{
			MethodName: "CreateCreature",
			Handler:    unaryHandler(CreatureService_CreateCreature_FullMethodName, CreatureServiceServer.CreateCreature),
		},
		{
			MethodName: "SaveDraft",
			Handler:    unaryHandler(CreatureService_SaveDraft_FullMethodName, CreatureServiceServer.SaveDraft),
		},
		{
			MethodName: "Autosave",
			Handler:    unaryHandler(CreatureService_Autosave_FullMethodName, CreatureServiceServer.Autosave),
		},
		{
			MethodName: "SubmitCreature",
			Handler:    unaryHandler(CreatureService_SubmitCreature_FullMethodName, CreatureServiceServer.SubmitCreature),
		},
		{
			MethodName: "GetCreature",
			Handler:    unaryHandler(CreatureService_GetCreature_FullMethodName, CreatureServiceServer.GetCreature),
		},
		{
			MethodName: "UpdateCreature",
			Handler:    unaryHandler(CreatureService_UpdateCreature_FullMethodName, CreatureServiceServer.UpdateCreature),
		},
		{
			MethodName: "DeleteCreature",
			Handler:    unaryHandler(CreatureService_DeleteCreature_FullMethodName, CreatureServiceServer.DeleteCreature),
		},
		{
			MethodName: "ListCreatures",
			Handler:    unaryHandler(CreatureService_ListCreatures_FullMethodName, CreatureServiceServer.ListCreatures),
		},
		{
			MethodName: "GetEditSession",
			Handler:    unaryHandler(CreatureService_GetEditSession_FullMethodName, CreatureServiceServer.GetEditSession),
		},
		{
			MethodName: "UploadDrawing",
			Handler:    unaryHandler(CreatureService_UploadDrawing_FullMethodName, CreatureServiceServer.UploadDrawing),
		},
		{
			MethodName: "DescribeDrawing",
			Handler:    unaryHandler(CreatureService_DescribeDrawing_FullMethodName, CreatureServiceServer.DescribeDrawing),
		},
		{
			MethodName: "GenerateArtwork",
			Handler:    unaryHandler(CreatureService_GenerateArtwork_FullMethodName, CreatureServiceServer.GenerateArtwork),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "creature/v1alpha1/creature.json",
}
