package e2e

import (
	"log/slog"

	"github.com/stretchr/testify/suite"
)

// BaseSuite carries the shared configuration for end-to-end scenarios.
// Scenarios run the real client core against a scripted loopback service,
// so they exercise the full async path without a network.
type BaseSuite struct {
	suite.Suite
	Config Config
	Log    *slog.Logger
}

func (s *BaseSuite) SetupSuite() {
	cfg, err := LoadConfig()
	s.Require().NoError(err)
	s.Config = cfg
	s.Log = slog.Default()
}
