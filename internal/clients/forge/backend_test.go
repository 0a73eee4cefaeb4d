package forge_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/clients/forge"
	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/creature"
)

// recordingServer remembers the last request and its authorization header
type recordingServer struct {
	creaturev1alpha1.UnimplementedCreatureServiceServer
	lastAuth    string
	lastRequest *creaturev1alpha1.SaveRequest
	failWith    error
}

func (r *recordingServer) record(ctx context.Context, req *creaturev1alpha1.SaveRequest) {
	r.lastAuth = ""
	if values := metadata.ValueFromIncomingContext(ctx, "authorization"); len(values) > 0 {
		r.lastAuth = values[0]
	}
	r.lastRequest = req
}

func (r *recordingServer) saved(req *creaturev1alpha1.SaveRequest, status string) *creaturev1alpha1.Creature {
	c := *req.Creature
	c.ID = "creature-1"
	c.Status = status
	c.OwnerID = "user-1"
	return &c
}

func (r *recordingServer) Autosave(ctx context.Context, req *creaturev1alpha1.SaveRequest) (*creaturev1alpha1.AutosaveResponse, error) {
	r.record(ctx, req)
	return &creaturev1alpha1.AutosaveResponse{Status: "saved", Creature: r.saved(req, "draft")}, nil
}

func (r *recordingServer) SaveDraft(ctx context.Context, req *creaturev1alpha1.SaveRequest) (*creaturev1alpha1.SaveResponse, error) {
	r.record(ctx, req)
	if r.failWith != nil {
		return nil, errors.ToGRPCError(r.failWith)
	}
	return &creaturev1alpha1.SaveResponse{Creature: r.saved(req, "draft"), Created: true}, nil
}

func (r *recordingServer) SubmitCreature(ctx context.Context, req *creaturev1alpha1.SaveRequest) (*creaturev1alpha1.SaveResponse, error) {
	r.record(ctx, req)
	return &creaturev1alpha1.SaveResponse{Creature: r.saved(req, "published")}, nil
}

type BackendTestSuite struct {
	suite.Suite
	server  *recordingServer
	backend *forge.Backend
	ctx     context.Context
}

func (s *BackendTestSuite) SetupTest() {
	s.server = &recordingServer{}
	s.ctx = context.Background()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	creaturev1alpha1.RegisterCreatureServiceServer(srv, s.server)
	go func() { _ = srv.Serve(lis) }()
	s.T().Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	s.backend, err = forge.NewBackend(&forge.BackendConfig{
		Client: creaturev1alpha1.NewCreatureServiceClient(conn),
		Token:  "default-token",
	})
	s.Require().NoError(err)
}

func (s *BackendTestSuite) input() *creature.SaveInput {
	c := &entities.Creature{Name: "Emberling", HP: entities.Ptr(45)}
	c.SetMalePercentage(87)
	return &creature.SaveInput{EditSessionID: "edit-1", Creature: c}
}

func (s *BackendTestSuite) TestNewBackendRequiresClient() {
	_, err := forge.NewBackend(&forge.BackendConfig{})
	s.Error(err)
}

func (s *BackendTestSuite) TestSaveDraftUsesDefaultToken() {
	out, err := s.backend.SaveDraft(s.ctx, s.input())
	s.Require().NoError(err)

	s.Equal("Bearer default-token", s.server.lastAuth)
	s.Equal("edit-1", s.server.lastRequest.EditSessionID)
	s.Equal(87, *s.server.lastRequest.Creature.MalePercentage)
	s.True(out.Created)
	s.Equal("creature-1", out.Creature.ID)
	s.Equal(entities.StatusDraft, out.Creature.Status)
	s.Equal("user-1", *out.Creature.OwnerID)
}

func (s *BackendTestSuite) TestSessionTokenWins() {
	input := s.input()
	input.Session = &entities.Session{Token: "session-token", UserID: "user-1"}

	_, err := s.backend.Submit(s.ctx, input)
	s.Require().NoError(err)
	s.Equal("Bearer session-token", s.server.lastAuth)
}

func (s *BackendTestSuite) TestAutosave() {
	out, err := s.backend.Autosave(s.ctx, s.input())
	s.Require().NoError(err)
	s.Equal(creature.AutosaveSaved, out.Status)
	s.Equal("creature-1", out.Creature.ID)
}

func (s *BackendTestSuite) TestErrorsKeepUserMessage() {
	s.server.failWith = errors.PermissionDenied("not yours").WithUserMessage("This creature belongs to someone else.")

	_, err := s.backend.SaveDraft(s.ctx, s.input())
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
	s.Equal("This creature belongs to someone else.", errors.UserMessage(err))
}

func TestBackendTestSuite(t *testing.T) {
	suite.Run(t, new(BackendTestSuite))
}
