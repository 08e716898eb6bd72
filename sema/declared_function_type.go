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
	"github.com/turbolent/prettier"
)

// DeclaredFunctionType is the signature of an explicitly annotated function.
// Unlike FunctionType it carries no inference state: it is never loose and
// has no outer-variable preconditions.
//
// A DeclaredFunctionType is immutable once constructed.
type DeclaredFunctionType struct {
	RequiredFormals []Type
	OptionalFormals []Type
	// RestFormals is the type of the variadic tail, or nil if the function
	// is not variadic.
	RestFormals Type
	// ReturnType may be nil for a declaration whose return type
	// is to be inferred later.
	ReturnType     Type
	NominalType    Type
	ReceiverType   Type
	TypeParameters *TypeParameters
	Abstract       bool
}

// NewDeclaredFunctionType returns a normalized declared signature:
// placeholder (nil) optional formals become the unknown type,
// and a missing type parameter list becomes the empty list.
//
// The fields are re-validated here, not only in FunctionTypeBuilder,
// since the builder is only one producer of declared signatures.
func NewDeclaredFunctionType(
	commonTypes *CommonTypes,
	requiredFormals []Type,
	optionalFormals []Type,
	restFormals Type,
	returnType Type,
	nominalType Type,
	receiverType Type,
	typeParameters *TypeParameters,
	abstract bool,
) (*DeclaredFunctionType, error) {

	required := make([]Type, len(requiredFormals))
	copy(required, requiredFormals)

	optional := make([]Type, len(optionalFormals))
	for i, formal := range optionalFormals {
		if formal == nil {
			optional[i] = commonTypes.Unknown
			continue
		}
		if formal.IsBottom() {
			return nil, &InvalidOptionalFormalError{Type: formal}
		}
		optional[i] = formal
	}

	if typeParameters == nil {
		typeParameters = EmptyTypeParameters
	}

	return &DeclaredFunctionType{
		RequiredFormals: required,
		OptionalFormals: optional,
		RestFormals:     restFormals,
		ReturnType:      returnType,
		NominalType:     nominalType,
		ReceiverType:    receiverType,
		TypeParameters:  typeParameters,
		Abstract:        abstract,
	}, nil
}

func (t *DeclaredFunctionType) Equal(other *DeclaredFunctionType) bool {
	if other == nil {
		return t == nil
	}

	return typeListsEqual(t.RequiredFormals, other.RequiredFormals) &&
		typeListsEqual(t.OptionalFormals, other.OptionalFormals) &&
		typesEqual(t.RestFormals, other.RestFormals) &&
		typesEqual(t.ReturnType, other.ReturnType) &&
		typesEqual(t.NominalType, other.NominalType) &&
		typesEqual(t.ReceiverType, other.ReceiverType) &&
		t.TypeParameters.Equal(other.TypeParameters) &&
		t.Abstract == other.Abstract
}

func (t *DeclaredFunctionType) Doc() prettier.Doc {
	view := &FunctionType{
		RequiredFormals: t.RequiredFormals,
		OptionalFormals: t.OptionalFormals,
		RestFormals:     t.RestFormals,
		ReturnType:      t.ReturnType,
		NominalType:     t.NominalType,
		ReceiverType:    t.ReceiverType,
		TypeParameters:  t.TypeParameters,
		Abstract:        t.Abstract,
	}
	return view.Doc()
}

func (t *DeclaredFunctionType) String() string {
	return Prettier(t)
}
