package errors

import (
	"fmt"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

const errorDomain = "creature-forge"

// ToGRPCError converts an error to a gRPC status error. The status message is
// the friendly user message; the code, metadata and field violations travel
// as ErrorInfo and BadRequest details.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, UserMessage(err))
	}

	st := status.New(customErr.Code.GRPCCode(), UserMessage(customErr))

	info := &errdetails.ErrorInfo{
		Reason:   string(customErr.Code),
		Domain:   errorDomain,
		Metadata: map[string]string{"message": customErr.Message},
	}
	for k, v := range customErr.Meta {
		if k == metaValidationErrors {
			continue
		}
		info.Metadata[k] = fmt.Sprint(v)
	}

	details := []protoadapt.MessageV1{info}
	if fields := GetFieldErrors(customErr); len(fields) > 0 {
		details = append(details, badRequest(fields))
	}

	withDetails, detailErr := st.WithDetails(details...)
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			for k, v := range d.GetMetadata() {
				if k == "message" {
					continue
				}
				customErr.WithMeta(k, v)
			}
			customErr.WithUserMessage(st.Message())
		case *errdetails.BadRequest:
			fields := make(map[string][]string)
			for _, violation := range d.GetFieldViolations() {
				fields[violation.GetField()] = append(fields[violation.GetField()], violation.GetDescription())
			}
			customErr.WithMeta(metaValidationErrors, fields)
		}
	}

	return customErr
}

func badRequest(fields map[string][]string) *errdetails.BadRequest {
	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)

	br := &errdetails.BadRequest{}
	for _, field := range names {
		for _, msg := range fields[field] {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       field,
				Description: msg,
			})
		}
	}
	return br
}
