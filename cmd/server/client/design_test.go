package client

import (
	"bytes"
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/clients/forge"
	"github.com/KirkDiggler/creature-forge/internal/editor"
	"github.com/KirkDiggler/creature-forge/internal/pkg/clock"
)

type designServer struct {
	creaturev1alpha1.UnimplementedCreatureServiceServer

	mu        sync.Mutex
	submitted []*creaturev1alpha1.SaveRequest
	drafts    []*creaturev1alpha1.SaveRequest
}

func (d *designServer) respond(req *creaturev1alpha1.SaveRequest, status string) *creaturev1alpha1.SaveResponse {
	c := *req.Creature
	c.ID = "creature-1"
	c.Status = status
	return &creaturev1alpha1.SaveResponse{Creature: &c}
}

func (d *designServer) SaveDraft(_ context.Context, req *creaturev1alpha1.SaveRequest) (*creaturev1alpha1.SaveResponse, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drafts = append(d.drafts, req)
	return d.respond(req, "draft"), nil
}

func (d *designServer) SubmitCreature(_ context.Context, req *creaturev1alpha1.SaveRequest) (*creaturev1alpha1.SaveResponse, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.submitted = append(d.submitted, req)
	return d.respond(req, "published"), nil
}

type DesignTestSuite struct {
	suite.Suite
	server *designServer
	client creaturev1alpha1.CreatureServiceClient
	clock  *clock.Fake
	editor *editor.Editor
}

func (s *DesignTestSuite) SetupTest() {
	s.server = &designServer{}

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
	s.client = creaturev1alpha1.NewCreatureServiceClient(conn)

	backend, err := forge.NewBackend(&forge.BackendConfig{Client: s.client})
	s.Require().NoError(err)

	s.clock = clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.editor, err = editor.New(&editor.Config{
		Backend:       backend,
		EditSessionID: "edit-1",
		Clock:         s.clock,
		SaveTimeout:   5 * time.Second,
	})
	s.Require().NoError(err)
	s.T().Cleanup(s.editor.Close)

	timeout = 5 * time.Second
}

func (s *DesignTestSuite) run(script string) string {
	var out bytes.Buffer
	s.Require().NoError(designLoop(strings.NewReader(script), &out, s.editor, s.client))
	return out.String()
}

func (s *DesignTestSuite) TestSubmitSendsTheForm() {
	out := s.run("name = Emberling\nhp=45\nmale_percentage=87\n:submit\n")

	s.Contains(out, "in the gallery")
	s.Require().Len(s.server.submitted, 1)
	req := s.server.submitted[0]
	s.Equal("edit-1", req.EditSessionID)
	s.Equal("Emberling", req.Creature.Name)
	s.Equal(45, *req.Creature.HP)
	s.Equal(13, *req.Creature.FemalePercentage)

	// Submit cancelled the pending autosave
	s.Equal(0, s.clock.Pending())
}

func (s *DesignTestSuite) TestBadValueLeavesFormAlone() {
	out := s.run("name=Emberling\nhp=lots\n:quit\n")

	s.Contains(out, "⚠️")
	s.Nil(s.editor.Form().HP)
	s.Equal("Emberling", s.editor.Form().Name)
}

func (s *DesignTestSuite) TestDraftRemembersRecord() {
	s.run("name=Emberling\n:draft\n:quit\n")

	s.Require().Len(s.server.drafts, 1)
	s.Equal("creature-1", s.editor.RecordID())
}

func (s *DesignTestSuite) TestUnknownInput() {
	out := s.run("hello\n:fields\n")

	s.Contains(out, "type field=value")
	s.Contains(out, "male_percentage")
}

func TestDesignTestSuite(t *testing.T) {
	suite.Run(t, new(DesignTestSuite))
}
