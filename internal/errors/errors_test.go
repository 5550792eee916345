package errors_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	s.Equal("NOT_FOUND: character not found", errors.NotFound("character not found").Error())

	wrapped := errors.Wrap(fmt.Errorf("connection refused"), "failed to load character")
	s.Equal("INTERNAL: failed to load character: connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "char_1").
		WithMeta("kind", "class")

	s.Equal("char_1", err.Meta["character_id"])
	s.Equal("class", err.Meta["kind"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("database connection failed")
	wrapped := errors.Wrap(baseErr, "failed to get character")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to get character", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("record not found").WithMeta("character_id", "char_1")
	wrapped := errors.Wrapf(baseErr, "load %s", "char_1")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("load char_1", wrapped.Message)
	s.Equal("char_1", wrapped.Meta["character_id"])

	wrapped.WithMeta("extra", true)
	s.NotContains(baseErr.Meta, "extra", "wrapping copies metadata")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("index entry missing").WithMeta("name", "Wizard")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "rules host unreachable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("Wizard", wrapped.Meta["name"])
	s.ErrorIs(wrapped, errors.NotFound(""), "the cause stays reachable")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructors() {
	testCases := []struct {
		err  *errors.Error
		code errors.Code
	}{
		{errors.NotFound("test"), errors.CodeNotFound},
		{errors.InvalidArgument("test"), errors.CodeInvalidArgument},
		{errors.FailedPrecondition("test"), errors.CodeFailedPrecondition},
		{errors.OutOfRangef("test"), errors.CodeOutOfRange},
		{errors.Internal("test"), errors.CodeInternal},
		{errors.Unavailable("test"), errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.code, tc.err.Code)
			s.Equal("test", tc.err.Message)
		})
	}

	s.Equal("level 25 out of range", errors.OutOfRangef("level %d out of range", 25).Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.NotFound("user facing").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped")
	stdErr := fmt.Errorf("standard error")

	s.True(errors.IsNotFound(wrapped))
	s.True(errors.IsInternal(stdErr))
	s.False(errors.IsInternal(nil))

	s.Equal("value", errors.GetMeta(wrapped)["key"])
	s.Nil(errors.GetMeta(stdErr))
}

func (s *ErrorsTestSuite) TestFromHTTPStatus() {
	testCases := []struct {
		status int
		code   errors.Code
	}{
		{http.StatusOK, errors.CodeOK},
		{http.StatusNoContent, errors.CodeOK},
		{http.StatusNotFound, errors.CodeNotFound},
		{http.StatusGone, errors.CodeNotFound},
		{http.StatusGatewayTimeout, errors.CodeDeadlineExceeded},
		{http.StatusTooManyRequests, errors.CodeUnavailable},
		{http.StatusInternalServerError, errors.CodeUnavailable},
		{http.StatusForbidden, errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			s.Equal(tc.code, errors.FromHTTPStatus(tc.status))
		})
	}
}

func (s *ErrorsTestSuite) TestFromContext() {
	s.Nil(errors.FromContext(context.Background(), "still running"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.True(errors.IsCanceled(errors.FromContext(ctx, "stopped")))

	ctx, cancel = context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()
	s.True(errors.IsDeadlineExceeded(errors.FromContext(ctx, "too slow")))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	grpcErr := errors.ToGRPCError(errors.NotFound("character not found"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("character not found", st.Message())

	back := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	var converted *errors.Error
	s.Require().ErrorAs(back, &converted)
	s.Equal(errors.CodeInvalidArgument, converted.Code)
	s.Equal("invalid input", converted.Message)

	s.Equal(codes.Internal, status.Code(errors.ToGRPCError(fmt.Errorf("boom"))))
	s.Equal(codes.Canceled, status.Code(errors.ToGRPCError(context.Canceled)))
	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCMetaRoundTrip() {
	err := errors.OutOfRangef("points used must be between 0 and %d", 2).
		WithMeta("feature", "Second Wind").
		WithMeta("max", 2)

	back := errors.FromGRPCError(errors.ToGRPCError(err))

	s.True(errors.IsOutOfRange(back))
	s.Equal("Second Wind", errors.GetMeta(back)["feature"])
	s.Equal("2", errors.GetMeta(back)["max"])
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeCanceled, codes.Canceled},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeOutOfRange, codes.OutOfRange},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("BOGUS"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}

	s.True(errors.IsInternal(errors.FromGRPCError(status.Error(codes.PermissionDenied, "no"))))
}
