// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package services

import (
	"context"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/podium/internal/logging"
)

// OneShotService runs fn once and then asks its supervisor not to restart
// it. A failure is logged, not retried; the dashboard warmup uses this so a
// cold backend does not turn into a restart loop.
type OneShotService struct {
	name string
	fn   func(ctx context.Context) error
}

// NewOneShotService wraps fn as a supervised one-shot task.
func NewOneShotService(name string, fn func(ctx context.Context) error) *OneShotService {
	return &OneShotService{name: name, fn: fn}
}

// Serve implements suture.Service.
func (s *OneShotService) Serve(ctx context.Context) error {
	log := logging.WithComponent(s.name)
	if err := s.fn(ctx); err != nil {
		log.Warn().Err(err).Msg("One-shot task failed")
	} else {
		log.Debug().Msg("One-shot task completed")
	}
	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer.
func (s *OneShotService) String() string {
	return s.name
}
