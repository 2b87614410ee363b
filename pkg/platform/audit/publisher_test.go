package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "workshop/pkg/domain"
)

// LogPublisherSuite tests the structured audit sink.
//
// Justification: Optional fields are only written when set, which feature
// tests through the CLI cannot observe.
type LogPublisherSuite struct {
	suite.Suite
	buf       *bytes.Buffer
	publisher *LogPublisher
}

func TestLogPublisherSuite(t *testing.T) {
	suite.Run(t, new(LogPublisherSuite))
}

func (s *LogPublisherSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.publisher = NewLogPublisher(slog.New(slog.NewJSONHandler(s.buf, nil)))
}

func (s *LogPublisherSuite) decode() map[string]any {
	var record map[string]any
	s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &record))
	return record
}

func (s *LogPublisherSuite) TestEmitAccepted() {
	regID := id.NewRegistrationID()
	err := s.publisher.Emit(context.Background(), Event{
		Timestamp:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		RegistrationID: regID,
		Action:         string(EventRegistrationAccepted),
		Decision:       DecisionAccepted,
		RequestID:      "entry-1",
	})
	s.Require().NoError(err)

	record := s.decode()
	s.Equal("registration_accepted", record["msg"])
	s.Equal("audit", record["log_type"])
	s.Equal("accepted", record["decision"])
	s.Equal(regID.String(), record["registration_id"])
	s.Equal("entry-1", record["request_id"])
	s.NotContains(record, "reason")
	s.NotContains(record, "param")
}

func (s *LogPublisherSuite) TestEmitRejected() {
	err := s.publisher.Emit(context.Background(), Event{
		Action:   string(EventRegistrationRejected),
		Decision: DecisionRejected,
		Reason:   "mobile must be a valid NZ mobile number",
		Param:    "mobile",
	})
	s.Require().NoError(err)

	record := s.decode()
	s.Equal("rejected", record["decision"])
	s.Equal("mobile", record["param"])
	s.NotContains(record, "registration_id")
	s.NotContains(record, "request_id")
}

func (s *LogPublisherSuite) TestNilLoggerFallsBackToDefault() {
	s.NotNil(NewLogPublisher(nil).logger)
}
