package application

import (
	"fmt"

	"github.com/bnema/vpnadm/internal/domain"
)

const DefaultExpiryResetDays = 30

type LoginCommand struct {
	Profile  domain.ProfileName
	BaseURL  string
	Username string
	Password string
	Locale   string
}

type ReviewDecision string

const (
	ReviewApprove ReviewDecision = "approve"
	ReviewReject  ReviewDecision = "reject"
)

func (d ReviewDecision) Status() (domain.PaymentStatus, error) {
	switch d {
	case ReviewApprove:
		return domain.PaymentApproved, nil
	case ReviewReject:
		return domain.PaymentRejected, nil
	default:
		return "", fmt.Errorf("unknown review decision %q", d)
	}
}
