package creaturev1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
)

type echoServer struct {
	creaturev1alpha1.UnimplementedCreatureServiceServer
}

func (echoServer) GetCreature(_ context.Context, req *creaturev1alpha1.GetCreatureRequest) (*creaturev1alpha1.GetCreatureResponse, error) {
	hp := 45
	return &creaturev1alpha1.GetCreatureResponse{Creature: &creaturev1alpha1.Creature{
		ID:   req.ID,
		Name: "Emberling",
		HP:   &hp,
	}}, nil
}

func dial(t *testing.T) creaturev1alpha1.CreatureServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	creaturev1alpha1.RegisterCreatureServiceServer(srv, echoServer{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return creaturev1alpha1.NewCreatureServiceClient(conn)
}

func TestCodecIsRegistered(t *testing.T) {
	codec := encoding.GetCodec(creaturev1alpha1.CodecName)
	require.NotNil(t, codec)

	data, err := codec.Marshal(&creaturev1alpha1.DescribeDrawingRequest{Image: []byte{0x89, 'P'}, Hint: "bubbles"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"image":"iVA=","hint":"bubbles"}`, string(data))

	var out creaturev1alpha1.DescribeDrawingRequest
	require.NoError(t, codec.Unmarshal(data, &out))
	assert.Equal(t, []byte{0x89, 'P'}, out.Image)
}

func TestRoundTripOverGRPC(t *testing.T) {
	client := dial(t)

	resp, err := client.GetCreature(context.Background(), &creaturev1alpha1.GetCreatureRequest{ID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.Creature.ID)
	assert.Equal(t, 45, *resp.Creature.HP)
	assert.Nil(t, resp.Creature.Attack)
}

func TestUnimplementedMethods(t *testing.T) {
	client := dial(t)

	_, err := client.Logout(context.Background(), &creaturev1alpha1.LogoutRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
