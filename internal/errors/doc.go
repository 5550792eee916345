// Package errors carries a code, a user-facing message and optional metadata
// from the layer that detects a failure to the gRPC boundary.
//
// Repositories and the rules client create coded errors:
//
//	return errors.NotFoundf("character with ID %s not found", id).
//	    WithMeta("character_id", id)
//
// Orchestrators wrap them with context; Wrap keeps the code, WrapWithCode
// reclassifies:
//
//	if err != nil {
//	    return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "rules host unreachable")
//	}
//
// Handlers convert with ToGRPCError, which copies metadata into an
// errdetails.ErrorInfo so clients can read it back with FromGRPCError.
//
// Config and input checks collect field errors with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("BaseURL", cfg.BaseURL, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
