/*
 * Jaspar - a static type checker for JSDoc-annotated JavaScript
 *
 * Copyright Jaspar Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sema

import (
	"fmt"

	"github.com/jasparjs/jaspar/errors"
)

// Errors in this file are contract violations: they indicate a bug in the
// code driving a FunctionTypeBuilder (the JSDoc parser or the inference pass),
// never an error in the program being checked. Both drivers are expected to
// handle them at their own boundary and substitute a fallback signature.

// ParameterOrderError

// ParameterOrderError is reported when formal parameters are added
// out of the required, optional, rest order.
type ParameterOrderError struct {
	Message string
}

var _ errors.InternalError = &ParameterOrderError{}

func (*ParameterOrderError) IsInternalError() {}

func (e *ParameterOrderError) Error() string {
	return e.Message
}

// AlreadySetError

// AlreadySetError is reported when a single-valued signature fact
// is set a second time.
type AlreadySetError struct {
	Name string
}

var _ errors.InternalError = &AlreadySetError{}

func (*AlreadySetError) IsInternalError() {}

func (e *AlreadySetError) Error() string {
	return fmt.Sprintf("%s already set", e.Name)
}

// InvalidOptionalFormalError

// InvalidOptionalFormalError is reported when an optional formal
// is declared with the bottom type, which has no absent value to join with.
type InvalidOptionalFormalError struct {
	Type Type
}

var _ errors.InternalError = &InvalidOptionalFormalError{}

func (*InvalidOptionalFormalError) IsInternalError() {}

func (e *InvalidOptionalFormalError) Error() string {
	return fmt.Sprintf("optional formal must not have the bottom type: %s", e.Type)
}

// InvalidDeclarationError

// InvalidDeclarationError is reported when a declared signature is built
// from a builder carrying inference-only state.
type InvalidDeclarationError struct {
	Message string
}

var _ errors.InternalError = &InvalidDeclarationError{}

func (*InvalidDeclarationError) IsInternalError() {}

func (e *InvalidDeclarationError) Error() string {
	return e.Message
}
