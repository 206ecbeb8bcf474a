package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// RoleAdmin 允许触发派发的角色
	RoleAdmin = "admin"
	issuer    = "newsletter-platform"
)

type JwtAuth struct {
	key    string
	parser *jwt.Parser
}

func NewJwtAuth(key string) *JwtAuth {
	return &JwtAuth{
		key:    key,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

func (a *JwtAuth) Decode(tokenString string) (jwt.MapClaims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	token, err := a.parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return []byte(a.key), nil
	})
	if err != nil {
		return nil, fmt.Errorf("令牌解析失败: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("无效的令牌")
	}
	// MapClaims.Valid 不要求 exp，没有过期时间的令牌永远有效
	if !claims.VerifyExpiresAt(time.Now().Unix(), true) {
		return nil, fmt.Errorf("令牌缺少过期时间或已过期")
	}
	return claims, nil
}

// Encode 生成 HS256 令牌，未指定 exp 时默认 24 小时过期
func (a *JwtAuth) Encode(customClaims jwt.MapClaims) (string, error) {
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"iss": issuer,
	}
	for k, v := range customClaims {
		claims[k] = v
	}
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(24 * time.Hour).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.key))
}

// IsAdmin 令牌合法并且 role 为 admin
func (a *JwtAuth) IsAdmin(tokenString string) bool {
	claims, err := a.Decode(tokenString)
	if err != nil {
		return false
	}
	role, _ := claims["role"].(string)
	return role == RoleAdmin
}
