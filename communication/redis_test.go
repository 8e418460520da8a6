package communication

import (
	"context"
	"testing"

	"blobwar/game"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	client  *redis.Client
	channel *Redis
	ctx     context.Context
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(RedisSuite))
}

func (s *RedisSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	s.channel = NewRedis(s.client, "blobwar-test")
	s.ctx = context.Background()
}

func (s *RedisSuite) TearDownTest() {
	_ = s.channel.Close()
	_ = s.client.Close()
	s.mini.Close()
}

var (
	first  = game.Movement{Kind: game.Duplicate, From: game.At(0, 0), To: game.At(0, 1)}
	second = game.Movement{Kind: game.Relocate, From: game.At(3, 3), To: game.At(5, 5)}
)

func (s *RedisSuite) TestNothingPublished() {
	got, err := s.channel.Load(s.ctx)
	s.Require().NoError(err)
	s.False(got.Published())
}

func (s *RedisSuite) TestLastStoreWins() {
	s.Require().NoError(s.channel.Store(s.ctx, first, true))
	s.Require().NoError(s.channel.Store(s.ctx, game.Movement{}, false))
	s.Require().NoError(s.channel.Store(s.ctx, second, true))

	reader := NewRedis(s.client, s.channel.Key())
	got, err := reader.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(Record{Seq: 3, Move: second, Found: true}, got)
}

func (s *RedisSuite) TestReaderBetweenStores() {
	s.Require().NoError(s.channel.Store(s.ctx, first, true))

	got, err := s.channel.Load(s.ctx)
	s.Require().NoError(err)
	move, ok := got.Next()
	s.True(ok)
	s.Equal(first, move)
}

func (s *RedisSuite) TestReset() {
	s.Require().NoError(s.channel.Store(s.ctx, first, true))
	s.Require().NoError(s.channel.Reset(s.ctx))

	got, err := s.channel.Load(s.ctx)
	s.Require().NoError(err)
	s.False(got.Published())
}

func (s *RedisSuite) TestCorruptValue() {
	s.Require().NoError(s.mini.Set(s.channel.Key(), "not a number"))
	_, err := s.channel.Load(s.ctx)
	s.Error(err)
}

func (s *RedisSuite) TestDial() {
	channel, err := DialRedis("redis://"+s.mini.Addr(), "dialled")
	s.Require().NoError(err)
	defer channel.Close()

	s.Require().NoError(channel.Store(s.ctx, second, true))
	got, err := NewRedis(s.client, "dialled").Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(second, got.Move)

	_, err = DialRedis("://bad", "x")
	s.Error(err)
}
