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
	"github.com/jasparjs/jaspar/common/orderedmap"
	"github.com/jasparjs/jaspar/errors"
)

// FunctionTypeBuilder assembles one function signature from partial facts
// and finalizes it as either a DeclaredFunctionType or a FunctionType.
//
// The builder is driven during both JSDoc parsing and type inference,
// which may present facts in any call order. The builder enforces the
// logical order instead: formal parameters must arrive required, then
// optional, then rest, and single-valued facts may only be set once.
// Violations are returned as errors.InternalError values, since they
// signal a defect in the driving call sequence, not a type error in the
// checked program. Each driver handles them at its own boundary.
//
// A builder is single-use: create one per signature, call exactly one of
// BuildDeclaration and BuildFunction, and discard it.
type FunctionTypeBuilder struct {
	commonTypes *CommonTypes

	requiredFormals []Type
	// optionalFormals may contain nil entries, which mark placeholder
	// formals recorded for malformed parameter lists.
	optionalFormals []Type
	restFormals     Type
	returnType      Type
	loose           bool
	abstract        bool
	nominalType     Type
	// receiverType is only used to build declared signatures for
	// prototype methods
	receiverType   Type
	typeParameters *TypeParameters
	outerVars      *orderedmap.OrderedMap[string, Type]
}

func NewFunctionTypeBuilder(commonTypes *CommonTypes) *FunctionTypeBuilder {
	return &FunctionTypeBuilder{
		commonTypes:    commonTypes,
		typeParameters: EmptyTypeParameters,
		outerVars:      orderedmap.New[string, Type](0),
	}
}

// AddPlaceholderFormal records an unknown formal in whichever zone is still
// open, keeping slot counts aligned when the driving parser encounters a
// malformed parameter list. It never fails: if rest formals are already set
// there is no open zone left and the call is a no-op.
func (b *FunctionTypeBuilder) AddPlaceholderFormal() {
	switch {
	case b.restFormals != nil:
		// no open zone left

	case len(b.optionalFormals) > 0:
		b.optionalFormals = append(b.optionalFormals, b.commonTypes.Unknown)

	default:
		b.requiredFormals = append(b.requiredFormals, b.commonTypes.Unknown)
	}
}

func (b *FunctionTypeBuilder) AddRequiredFormal(t Type) error {
	if len(b.optionalFormals) > 0 || b.restFormals != nil {
		return &ParameterOrderError{
			Message: "cannot add required formal after optional or rest formals",
		}
	}
	b.requiredFormals = append(b.requiredFormals, t)
	return nil
}

// AddRequiredFormalToFront inserts a required formal before all existing
// required formals, preserving their relative order. It is used to prepend
// an implicit receiver-as-first-argument formal.
func (b *FunctionTypeBuilder) AddRequiredFormalToFront(t Type) error {
	if len(b.optionalFormals) > 0 || b.restFormals != nil {
		return &ParameterOrderError{
			Message: "cannot add required formal after optional or rest formals",
		}
	}
	b.requiredFormals = append([]Type{t}, b.requiredFormals...)
	return nil
}

// AddOptionalFormal records an optional formal. The stored type is the join
// of the given type with the undefined type, since the argument may be
// absent. A nil type records a placeholder formal instead.
func (b *FunctionTypeBuilder) AddOptionalFormal(t Type) error {
	if b.restFormals != nil {
		return &ParameterOrderError{
			Message: "cannot add optional formal after rest formals",
		}
	}

	if t == nil {
		b.optionalFormals = append(b.optionalFormals, nil)
		return nil
	}

	if t.IsBottom() {
		return &InvalidOptionalFormalError{Type: t}
	}

	b.optionalFormals = append(
		b.optionalFormals,
		Join(t, b.commonTypes.Undefined),
	)
	return nil
}

func (b *FunctionTypeBuilder) AddRestFormals(t Type) error {
	if b.restFormals != nil {
		return &AlreadySetError{Name: "rest formals"}
	}
	b.restFormals = t
	return nil
}

func (b *FunctionTypeBuilder) AddReturnType(t Type) error {
	if b.returnType != nil {
		return &AlreadySetError{Name: "return type"}
	}
	b.returnType = t
	return nil
}

func (b *FunctionTypeBuilder) AddNominalType(t Type) error {
	if b.nominalType != nil {
		return &AlreadySetError{Name: "nominal type"}
	}
	b.nominalType = t
	return nil
}

// AddReceiverType records the receiver ("this") type. Unlike the other
// single-valued facts it may be set more than once and the last write wins:
// prototype methods with an explicit receiver annotation supply the
// receiver type through two different code paths.
func (b *FunctionTypeBuilder) AddReceiverType(t Type) {
	b.receiverType = t
}

// AddOuterVarPrecondition records the inferred type of a variable captured
// from an enclosing scope. Re-recording a name overwrites its type.
// Only loose signatures carry outer-variable preconditions.
func (b *FunctionTypeBuilder) AddOuterVarPrecondition(name string, t Type) {
	b.outerVars.Set(name, t)
}

// AddLoose marks the signature as loose, i.e. built incrementally during
// type inference. Once set, the flag is never cleared.
func (b *FunctionTypeBuilder) AddLoose() {
	b.loose = true
}

func (b *FunctionTypeBuilder) AddAbstract(abstract bool) {
	b.abstract = abstract
}

func (b *FunctionTypeBuilder) SetTypeParameters(typeParameters *TypeParameters) error {
	if typeParameters == nil {
		return errors.NewUnexpectedError("type parameters must not be nil")
	}
	if !b.typeParameters.IsEmpty() {
		return &AlreadySetError{Name: "type parameters"}
	}
	b.typeParameters = typeParameters
	return nil
}

// AppendTypeParameters concatenates the given type parameters after the
// current ones. It is used when a function's own generic parameters must be
// combined with parameters introduced by a call-binding construct. The
// appended parameters are treated as unknown by inference rather than
// solved for, an accepted loss of precision.
func (b *FunctionTypeBuilder) AppendTypeParameters(typeParameters *TypeParameters) error {
	if typeParameters == nil {
		return errors.NewUnexpectedError("type parameters must not be nil")
	}
	names := append(b.typeParameters.Names(), typeParameters.Names()...)
	b.typeParameters = NewTypeParameters(names)
	return nil
}

// BuildDeclaration finalizes the builder as a declared signature.
// Declared signatures carry no inference state, so the loose flag must be
// unset and no outer-variable preconditions may have been recorded.
func (b *FunctionTypeBuilder) BuildDeclaration() (*DeclaredFunctionType, error) {
	if b.loose {
		return nil, &InvalidDeclarationError{
			Message: "cannot build declaration from loose signature",
		}
	}
	if b.outerVars.Len() > 0 {
		return nil, &InvalidDeclarationError{
			Message: "cannot build declaration with outer-variable preconditions",
		}
	}

	return NewDeclaredFunctionType(
		b.commonTypes,
		b.requiredFormals,
		b.optionalFormals,
		b.restFormals,
		b.returnType,
		b.nominalType,
		b.receiverType,
		b.typeParameters,
		b.abstract,
	)
}

// BuildFunction finalizes the builder as a function type.
//
// Every builder describing the maximally-unconstrained function shape
// resolves to the one canonical top function instance, so that consumers
// can rely on identity comparison against it. Note that the loose flag is
// deliberately not part of the check, to keep the representation unique.
func (b *FunctionTypeBuilder) BuildFunction() (*FunctionType, error) {
	if len(b.requiredFormals) == 0 &&
		len(b.optionalFormals) == 0 &&
		b.restFormals != nil && b.restFormals.IsUnknown() &&
		b.returnType != nil && b.returnType.IsUnknown() &&
		b.nominalType == nil &&
		b.receiverType == nil &&
		b.typeParameters.IsEmpty() &&
		b.outerVars.Len() == 0 {

		return b.commonTypes.TopFunction, nil
	}

	return NewFunctionType(
		b.commonTypes,
		b.requiredFormals,
		b.optionalFormals,
		b.restFormals,
		b.returnType,
		b.nominalType,
		b.receiverType,
		b.outerVars,
		b.typeParameters,
		b.loose,
		b.abstract,
	)
}
