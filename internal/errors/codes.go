package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error. Callers branch on it, never on message text.
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

type codeInfo struct {
	grpc codes.Code
	http int
	// banner is shown to the creator when the error carries no message of
	// its own. Empty falls back to the generic sentence.
	banner string
}

var codeTable = map[Code]codeInfo{
	CodeOK:       {grpc: codes.OK, http: http.StatusOK},
	CodeCanceled: {grpc: codes.Canceled, http: http.StatusRequestTimeout, banner: "That was cancelled."},
	CodeInvalidArgument: {
		grpc: codes.InvalidArgument, http: http.StatusBadRequest,
		banner: "Some of the details need fixing. Check the highlighted fields.",
	},
	CodeDeadlineExceeded: {
		grpc: codes.DeadlineExceeded, http: http.StatusGatewayTimeout,
		banner: "That took too long. Your work is still here, so try again.",
	},
	CodeNotFound: {
		grpc: codes.NotFound, http: http.StatusNotFound,
		banner: "We couldn't find that creature. It may have been deleted.",
	},
	CodeAlreadyExists: {
		grpc: codes.AlreadyExists, http: http.StatusConflict,
		banner: "That name is already taken. Try another one!",
	},
	CodePermissionDenied: {
		grpc: codes.PermissionDenied, http: http.StatusForbidden,
		banner: "Only the creature's creator can change it.",
	},
	CodeResourceExhausted: {
		grpc: codes.ResourceExhausted, http: http.StatusTooManyRequests,
		banner: "Lots of people are creating right now. Please try again in a minute.",
	},
	CodeFailedPrecondition: {
		grpc: codes.FailedPrecondition, http: http.StatusPreconditionFailed,
		banner: "That can't be done right now.",
	},
	CodeUnimplemented: {
		grpc: codes.Unimplemented, http: http.StatusNotImplemented,
		banner: "That isn't available yet.",
	},
	CodeInternal: {grpc: codes.Internal, http: http.StatusInternalServerError},
	CodeUnavailable: {
		grpc: codes.Unavailable, http: http.StatusServiceUnavailable,
		banner: "We couldn't reach the server. Your work is still here, so try again.",
	},
	CodeUnauthenticated: {
		grpc: codes.Unauthenticated, http: http.StatusUnauthorized,
		banner: "Please log in again.",
	},
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the HTTP status for the code, 500 when unknown
func (c Code) HTTPStatus() int {
	if info, ok := codeTable[c]; ok {
		return info.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the gRPC status code, Unknown when unknown
func (c Code) GRPCCode() codes.Code {
	if info, ok := codeTable[c]; ok {
		return info.grpc
	}
	return codes.Unknown
}

// codeFromGRPC maps a gRPC status code back. Codes with no counterpart
// (Aborted, DataLoss, ...) become Internal.
func codeFromGRPC(gc codes.Code) Code {
	for code, info := range codeTable {
		if info.grpc == gc {
			return code
		}
	}
	return CodeInternal
}
