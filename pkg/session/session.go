package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/pkg/cleanup"
)

const CookieName = "yavin_session"

var sessionTTL = time.Hour * 72

type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// Service maps signed session cookies to user ids through a redis registry.
// The cookie carries only an opaque session id; the id -> user mapping lives
// in redis with a TTL, so logout is a real purge and not just cookie removal.
type Service struct {
	secret []byte
	rdb    redis.Cmdable
}

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

func New(secret string, rdb redis.Cmdable) *Service {
	if secret == "" {
		log.Fatal("session service requires a signing secret")
	}
	return &Service{
		secret: []byte(secret),
		rdb:    rdb,
	}
}

func NewRedisClient(cfg *RedisCfg) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error while pinging redis for session service: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return client
}

// Start opens a session for uid and writes the signed cookie
func (s *Service) Start(ctx context.Context, w http.ResponseWriter, uid uuid.UUID) error {
	sid := uuid.New().String()
	err := s.rdb.Set(ctx, sessionKey(sid), uid.String(), sessionTTL).Err()
	if err != nil {
		return errors.New("storing session error: " + err.Error())
	}
	token, err := s.signToken(sid)
	if err != nil {
		return errors.New("signing session token error: " + err.Error())
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Resolve maps the request's session cookie to a user id. Every failure
// path means anonymous, never an error
func (s *Service) Resolve(ctx context.Context, r *http.Request) (uuid.UUID, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return uuid.Nil, false
	}
	claims, err := s.parseToken(cookie.Value)
	if err != nil {
		return uuid.Nil, false
	}
	raw, err := s.rdb.Get(ctx, sessionKey(claims.SessionID)).Result()
	if err != nil {
		return uuid.Nil, false
	}
	uid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return uid, true
}

// End purges the session registry entry and expires the cookie
func (s *Service) End(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		if claims, err := s.parseToken(cookie.Value); err == nil {
			s.rdb.Del(ctx, sessionKey(claims.SessionID))
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Service) signToken(sid string) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.New("token parsing error: " + err.Error())
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}

func sessionKey(sid string) string {
	return "session:" + sid
}
