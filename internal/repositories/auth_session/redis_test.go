package authsession_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	authsession "github.com/KirkDiggler/creature-forge/internal/repositories/auth_session"
	"github.com/KirkDiggler/creature-forge/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	repo    authsession.Repository
	ctx     context.Context
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.repo = authsession.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestLifecycle() {
	session := &entities.Session{Token: "tok_1", UserID: "user_1", DisplayName: "Sparky"}

	_, err := s.repo.Create(s.ctx, &authsession.CreateInput{Session: session})
	s.Require().NoError(err)
	s.True(s.mr.Exists("session:tok_1"))
	s.Zero(s.mr.TTL("session:tok_1"))

	got, err := s.repo.Get(s.ctx, &authsession.GetInput{Token: "tok_1"})
	s.Require().NoError(err)
	s.Equal(session, got.Session)

	_, err = s.repo.Delete(s.ctx, &authsession.DeleteInput{Token: "tok_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &authsession.GetInput{Token: "tok_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCorruptSession() {
	s.Require().NoError(s.mr.Set("session:bad", "{not json"))

	_, err := s.repo.Get(s.ctx, &authsession.GetInput{Token: "bad"})
	s.True(errors.IsInternal(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, &authsession.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, &authsession.CreateInput{Session: &entities.Session{UserID: "user_1"}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &authsession.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}
