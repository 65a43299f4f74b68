package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ApprovalsTestSuite struct {
	suite.Suite
	approvals *Approvals
}

func TestApprovalsSuite(t *testing.T) {
	suite.Run(t, new(ApprovalsTestSuite))
}

func (s *ApprovalsTestSuite) SetupTest() {
	a, err := NewApprovals([]byte("secret"))
	s.Require().NoError(err)
	s.approvals = a
}

func (s *ApprovalsTestSuite) TestIssueAndParse() {
	token, err := s.approvals.Issue("offer-1", "tenant-1", time.Now().Add(time.Hour))
	s.Require().NoError(err)

	claims, err := s.approvals.Parse(token)
	s.Require().NoError(err)
	s.Equal("offer-1", claims.OfferID)
	s.Equal("tenant-1", claims.TenantID)
}

func (s *ApprovalsTestSuite) TestExpiredTokenStillParses() {
	token, err := s.approvals.Issue("offer-1", "tenant-1", time.Now().Add(-time.Hour))
	s.Require().NoError(err)

	claims, err := s.approvals.Parse(token)
	s.Require().NoError(err)
	s.True(claims.ExpiresAt.Before(time.Now()))
}

func (s *ApprovalsTestSuite) TestForeignSignatureRejected() {
	other, err := NewApprovals([]byte("other"))
	s.Require().NoError(err)
	token, err := other.Issue("offer-1", "tenant-1", time.Now().Add(time.Hour))
	s.Require().NoError(err)

	_, err = s.approvals.Parse(token)
	s.Require().ErrorIs(err, ErrInvalidToken)
}

func (s *ApprovalsTestSuite) TestGarbageRejected() {
	_, err := s.approvals.Parse("not-a-token")
	s.Require().ErrorIs(err, ErrInvalidToken)
}

func (s *ApprovalsTestSuite) TestEmptyKey() {
	_, err := NewApprovals(nil)
	s.Require().Error(err)
}
