// Package tokens выпускает и проверяет токены одобрения коммерческих предложений.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid approval token")

type ApprovalClaims struct {
	jwt.RegisteredClaims
	OfferID  string `json:"oid"`
	TenantID string `json:"tid"`
}

// Approvals подписывает токены HS256. Токен непрозрачен для клиента: сервис дополнительно сверяет его
// с сохраненным значением.
type Approvals struct {
	key []byte
}

func NewApprovals(key []byte) (*Approvals, error) {
	if len(key) == 0 {
		return nil, errors.New("approval token key is empty")
	}
	return &Approvals{key: key}, nil
}

// Issue выпускает токен для предложения. exp совпадает со сроком действия предложения.
func (a *Approvals) Issue(offerID, tenantID string, expiresAt time.Time) (string, error) {
	claims := ApprovalClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   offerID,
		},
		OfferID:  offerID,
		TenantID: tenantID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
	if err != nil {
		return "", fmt.Errorf("signing approval token: %w", err)
	}
	return token, nil
}

// Parse проверяет подпись и возвращает claims. Срок действия не проверяется: истекшее предложение
// должно перейти в EXPIRED, а не получить ошибку токена.
func (a *Approvals) Parse(tokenString string) (*ApprovalClaims, error) {
	claims := new(ApprovalClaims)
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return a.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.OfferID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
