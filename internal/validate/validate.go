package validate

import (
	"regexp"
	"strconv"
	"strings"

	"harborview/internal/domain"
)

var (
	reID   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reUnit = regexp.MustCompile(`^[A-Za-z]{1,16}$`)
)

// Qty parses a form quantity, clamping into [1, 50].
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Delta parses a signed stock change; zero is rejected.
func Delta(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// ID validates a ledger identifier (order/item/notification ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

// Unit validates a stock unit such as kg or liters.
func Unit(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reUnit.MatchString(s)
}

// Reason validates a stock adjustment reason against the fixed set.
func Reason(s string) (domain.StockReason, bool) {
	switch r := domain.StockReason(strings.TrimSpace(s)); r {
	case domain.ReasonDelivery, domain.ReasonUsage, domain.ReasonWaste, domain.ReasonAdjustment:
		return r, true
	}
	return "", false
}

// Service validates a requested service kind against the fixed set.
func Service(s string) (domain.ServiceKind, bool) {
	switch k := domain.ServiceKind(strings.TrimSpace(s)); k {
	case domain.ServiceHousekeeping, domain.ServiceLaundry, domain.ServiceTransportation, domain.ServiceSpa:
		return k, true
	}
	return "", false
}

// Status validates an order status value.
func Status(s string) (domain.Status, bool) {
	switch st := domain.Status(strings.TrimSpace(s)); st {
	case domain.StatusPending, domain.StatusPreparing, domain.StatusReady, domain.StatusDelivered, domain.StatusProcessing:
		return st, true
	}
	return "", false
}

// Stock parses a non-negative stock level.
func Stock(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
