// Package ferrors provides the FloorScript error taxonomy (spec §7):
// structured, fatal-at-point-of-encounter errors, each carrying a
// code, a human message, and the offending id where one applies.
//
// Adapted from the shared error-wrapper shape used across the
// Granula microservices: a *Error with a Code, optional Cause, and a
// gRPC status-code mapping kept on every instance so a caller that
// exposes FloorScript over gRPC (the way floorplan-service exposes
// its own domain) never has to re-derive it.
package ferrors

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

// Code identifies a FloorScript error kind.
type Code string

const (
	CodeParse                 Code = "PARSE_ERROR"
	CodeSchema                Code = "SCHEMA_ERROR"
	CodeInvalidDimension      Code = "INVALID_DIMENSION"
	CodeMalformedWallRef      Code = "MALFORMED_WALL_REF"
	CodeInvalidWallDirection  Code = "INVALID_WALL_DIRECTION"
	CodeUnknownRoom           Code = "UNKNOWN_ROOM"
	CodeWallNotOnRoom         Code = "WALL_NOT_ON_ROOM"
	CodeUnknownFixture        Code = "UNKNOWN_FIXTURE"
	CodeDuplicateExtensionID  Code = "DUPLICATE_EXTENSION_ID"
	CodeExtensionOutOfBounds  Code = "EXTENSION_OUT_OF_BOUNDS"
	CodeIncompatibleSharedWall Code = "INCOMPATIBLE_SHARED_WALL"
)

// Error is a FloorScript domain error.
type Error struct {
	Code     Code
	Message  string
	Cause    error
	GRPCCode codes.Code
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

func newError(code Code, grpcCode codes.Code, message string) *Error {
	return &Error{Code: code, Message: message, GRPCCode: grpcCode}
}

// ParseError reports that neither JSON nor YAML decoded the document.
func ParseError(yamlDiagnostic string) *Error {
	return newError(CodeParse, codes.InvalidArgument,
		fmt.Sprintf("could not parse FloorScript document as JSON or YAML: %s", yamlDiagnostic))
}

// SchemaError aggregates structural validation failures into the
// canonical "Invalid FloorScript config:\n  - <path>: <msg>" message.
func SchemaError(issues []string) *Error {
	msg := "Invalid FloorScript config:"
	for _, issue := range issues {
		msg += "\n  - " + issue
	}
	return newError(CodeSchema, codes.InvalidArgument, msg)
}

// InvalidDimension reports an unparseable dimension string.
func InvalidDimension(input string, units string, cause error) *Error {
	e := newError(CodeInvalidDimension, codes.InvalidArgument,
		fmt.Sprintf("invalid dimension %q for %s units", input, units))
	e.Cause = cause
	return e
}

// MalformedWallRef reports a wall reference with no direction
// separator dot.
func MalformedWallRef(ref string) *Error {
	return newError(CodeMalformedWallRef, codes.InvalidArgument,
		fmt.Sprintf("malformed wall reference %q: expected \"{roomId}.{direction}\"", ref))
}

// InvalidWallDirection reports a direction that isn't one of the four
// cardinal directions.
func InvalidWallDirection(ref, direction string) *Error {
	return newError(CodeInvalidWallDirection, codes.InvalidArgument,
		fmt.Sprintf("invalid wall direction %q in reference %q", direction, ref))
}

// UnknownRoom reports a wall/room reference to a room id that
// doesn't exist in the plan.
func UnknownRoom(roomID string) *Error {
	return newError(CodeUnknownRoom, codes.NotFound,
		fmt.Sprintf("unknown room %q", roomID))
}

// WallNotOnRoom reports a wall reference naming a room that exists,
// but with no wall in that direction.
func WallNotOnRoom(roomID string, direction any) *Error {
	return newError(CodeWallNotOnRoom, codes.NotFound,
		fmt.Sprintf("room %q has no wall %v", roomID, direction))
}

// UnknownFixture reports a run endpoint referencing a fixture id that
// doesn't exist.
func UnknownFixture(fixtureID string) *Error {
	return newError(CodeUnknownFixture, codes.NotFound,
		fmt.Sprintf("unknown fixture %q", fixtureID))
}

// DuplicateExtensionID reports two sub-spaces within the same parent
// room sharing an id.
func DuplicateExtensionID(roomID, subSpaceID string) *Error {
	return newError(CodeDuplicateExtensionID, codes.AlreadyExists,
		fmt.Sprintf("duplicate sub-space id %q in room %q", subSpaceID, roomID))
}

// ExtensionOutOfBounds reports a sub-space positioned outside its
// parent wall's length.
func ExtensionOutOfBounds(subSpaceID string, posAlongWall, width, wallLength float64) *Error {
	return newError(CodeExtensionOutOfBounds, codes.InvalidArgument,
		fmt.Sprintf("sub-space %q at offset %.4f width %.4f exceeds parent wall length %.4f",
			subSpaceID, posAlongWall, width, wallLength))
}

// IncompatibleSharedWall reports two rooms whose shared wall
// compositions disagree on total thickness.
func IncompatibleSharedWall(roomA, roomB string, thicknessA, thicknessB float64) *Error {
	return newError(CodeIncompatibleSharedWall, codes.FailedPrecondition,
		fmt.Sprintf("rooms %q and %q disagree on shared wall thickness (%.4f vs %.4f)",
			roomA, roomB, thicknessA, thicknessB))
}
