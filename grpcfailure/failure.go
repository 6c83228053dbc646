// Package grpcfailure renders gRPC status errors attached to logcat records
package grpcfailure

import (
	"fmt"
	"strings"

	"github.com/deixis/logcat"
	"github.com/golang/protobuf/ptypes"
	"github.com/pkg/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Render renders err with its gRPC code, message and status details.
// Errors that do not carry a gRPC status are rendered with
// logcat.RenderFailure.
func Render(err error) string {
	return NewRenderer(logcat.RenderFailure)(err)
}

// NewRenderer returns a failure renderer for gRPC status errors, which
// delegates any other error to next.
//
// e.g.
//   p := logcat.NewConsole(os.Stderr, logcat.ConsoleOptions{
//     Renderer: grpcfailure.NewRenderer(logcat.RenderFailure),
//   })
func NewRenderer(next func(error) string) func(error) string {
	return func(err error) string {
		if err == nil {
			return ""
		}
		s, ok := status.FromError(errors.Cause(err))
		if !ok || s.Code() == codes.OK {
			return next(err)
		}
		return render(s)
	}
}

func render(s *status.Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "rpc error: code = %s desc = %s", s.Code(), s.Message())

	for _, d := range s.Details() {
		switch d := d.(type) {
		case *errdetails.BadRequest:
			for _, v := range d.FieldViolations {
				fmt.Fprintf(&b, "\n  field %s: %s", v.Field, v.Description)
			}
		case *errdetails.PreconditionFailure:
			for _, v := range d.Violations {
				fmt.Fprintf(&b, "\n  precondition %s %s: %s", v.Type, v.Subject, v.Description)
			}
		case *errdetails.QuotaFailure:
			for _, v := range d.Violations {
				fmt.Fprintf(&b, "\n  quota %s: %s", v.Subject, v.Description)
			}
		case *errdetails.ResourceInfo:
			fmt.Fprintf(&b, "\n  resource %s %s: %s", d.ResourceType, d.ResourceName, d.Description)
		case *errdetails.RetryInfo:
			delay, err := ptypes.Duration(d.RetryDelay)
			if err != nil {
				fmt.Fprintf(&b, "\n  retry delay invalid: %s", err)
				continue
			}
			fmt.Fprintf(&b, "\n  retry in %s", delay)
		case *errdetails.DebugInfo:
			fmt.Fprintf(&b, "\n  debug: %s", d.Detail)
			for _, entry := range d.StackEntries {
				fmt.Fprintf(&b, "\n    %s", entry)
			}
		case error:
			fmt.Fprintf(&b, "\n  undecodable detail: %s", d)
		default:
			fmt.Fprintf(&b, "\n  %v", d)
		}
	}
	return b.String()
}
