// Package errors provides coded errors for creature-forge.
//
// Every layer returns *Error values so callers can branch on a Code rather
// than on message text:
//
//	err := errors.NotFoundf("creature %s not found", id).
//	    WithMeta("creature_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load creature")
//	}
//
// Field validation is collected with a ValidationBuilder and surfaces as
// INVALID_ARGUMENT carrying the per-field messages, which the gRPC layer
// sends back as a BadRequest detail so forms can show errors inline:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// UserMessage turns any error into a short, friendly sentence suitable for a
// dismissible banner. Handlers log the full error and send the friendly one.
package errors
