package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/core/ring"
)

// scenario is the scripted walk through the ring API. Failures are logged
// and counted, never returned: several steps are expected to fail.
type scenario struct {
	ring    *ring.Ring
	logger  *zap.Logger
	metrics *control.MetricsRegistry
}

func (s *scenario) run() {
	r := s.ring
	s.logger.Info("ring buffer initialized",
		zap.String("capacity", humanize.IBytes(uint64(r.Cap()))))

	data := []byte{0x01, 0x02, 0x03}
	if err := s.metrics.Record("write", r.Write(data)); err != nil {
		s.fail("failed to write data to ring buffer", err)
	} else {
		s.logger.Info("data written to ring buffer", zap.String("data", hexBytes(data)))
	}

	s.logger.Info("available data", zap.Int("bytes", r.Len()))

	peeked, err := r.Peek(len(data))
	if s.metrics.Record("peek", err) != nil {
		s.fail("failed to peek data from ring buffer", err)
	} else {
		s.logger.Info("data peeked from ring buffer without removing it",
			zap.String("data", hexBytes(peeked)))
	}

	read, err := r.Read(len(data))
	if s.metrics.Record("read", err) != nil {
		s.fail("failed to read data from ring buffer", err)
	} else {
		s.logger.Info("data read from ring buffer", zap.String("data", hexBytes(read)))
	}

	s.logger.Info("ring buffer emptiness", zap.Bool("empty", r.IsEmpty()))

	b, err := r.GetByte()
	if s.metrics.Record("get_byte", err) != nil {
		s.fail("failed to read byte", err)
	} else {
		s.logger.Info("byte read", zap.String("byte", fmt.Sprintf("0x%02X", b)))
	}

	for i := 0; i < r.Cap(); i++ {
		if err := s.metrics.Record("put_byte", r.PutByte(byte(i))); err != nil {
			s.fail("failed to write byte", err)
		}
	}
	s.logger.Info("ring buffer filled", zap.Int("bytes", r.Len()), zap.Bool("full", r.IsFull()))

	if err := s.metrics.Record("put_byte", r.PutByte(0xAA)); err != nil {
		s.fail("failed to write byte", err)
	}
}

func (s *scenario) fail(msg string, err error) {
	s.logger.Warn(msg, zap.Stringer("status", api.StatusOf(err)), zap.Error(err))
}

func hexBytes(p []byte) string {
	return fmt.Sprintf("% X", p)
}
