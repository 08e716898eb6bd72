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
	"strings"

	"github.com/turbolent/prettier"

	"github.com/jasparjs/jaspar/common/orderedmap"
)

// FunctionType is the type of function values, including signatures built
// incrementally during type inference. Unlike DeclaredFunctionType it may be
// loose and may carry outer-variable preconditions.
//
// A FunctionType is immutable once constructed. Use NewFunctionType,
// which normalizes and validates the fields; direct construction is
// reserved for the canonical instances in CommonTypes.
type FunctionType struct {
	RequiredFormals []Type
	OptionalFormals []Type
	// RestFormals is the type of the variadic tail, or nil if the function
	// is not variadic.
	RestFormals    Type
	ReturnType     Type
	NominalType    Type
	ReceiverType   Type
	OuterVars      *orderedmap.OrderedMap[string, Type]
	TypeParameters *TypeParameters
	Loose          bool
	Abstract       bool
}

var _ Type = &FunctionType{}

// NewFunctionType returns a normalized function type:
// placeholder (nil) optional formals become the unknown type,
// a missing return type becomes the unknown type,
// and a missing type parameter list becomes the empty list.
//
// The fields are re-validated here, not only in FunctionTypeBuilder,
// since the builder is only one producer of function types.
func NewFunctionType(
	commonTypes *CommonTypes,
	requiredFormals []Type,
	optionalFormals []Type,
	restFormals Type,
	returnType Type,
	nominalType Type,
	receiverType Type,
	outerVars *orderedmap.OrderedMap[string, Type],
	typeParameters *TypeParameters,
	loose bool,
	abstract bool,
) (*FunctionType, error) {

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

	if returnType == nil {
		returnType = commonTypes.Unknown
	}

	if typeParameters == nil {
		typeParameters = EmptyTypeParameters
	}

	if outerVars == nil {
		outerVars = orderedmap.New[string, Type](0)
	}

	return &FunctionType{
		RequiredFormals: required,
		OptionalFormals: optional,
		RestFormals:     restFormals,
		ReturnType:      returnType,
		NominalType:     nominalType,
		ReceiverType:    receiverType,
		OuterVars:       outerVars,
		TypeParameters:  typeParameters,
		Loose:           loose,
		Abstract:        abstract,
	}, nil
}

func (*FunctionType) isType() {}

func (*FunctionType) IsUnknown() bool {
	return false
}

func (*FunctionType) IsBottom() bool {
	return false
}

func (t *FunctionType) Equal(other Type) bool {
	otherFunction, ok := other.(*FunctionType)
	if !ok {
		return false
	}

	if !typeListsEqual(t.RequiredFormals, otherFunction.RequiredFormals) ||
		!typeListsEqual(t.OptionalFormals, otherFunction.OptionalFormals) ||
		!typesEqual(t.RestFormals, otherFunction.RestFormals) ||
		!typesEqual(t.ReturnType, otherFunction.ReturnType) ||
		!typesEqual(t.NominalType, otherFunction.NominalType) ||
		!typesEqual(t.ReceiverType, otherFunction.ReceiverType) ||
		!t.TypeParameters.Equal(otherFunction.TypeParameters) ||
		t.Loose != otherFunction.Loose ||
		t.Abstract != otherFunction.Abstract {

		return false
	}

	return outerVarsEqual(t.OuterVars, otherFunction.OuterVars)
}

func typesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func typeListsEqual(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i, t := range a {
		if !t.Equal(b[i]) {
			return false
		}
	}
	return true
}

// outerVarsEqual compares outer-variable preconditions by name,
// not by insertion order.
func outerVarsEqual(a, b *orderedmap.OrderedMap[string, Type]) bool {
	aLen := 0
	if a != nil {
		aLen = a.Len()
	}
	bLen := 0
	if b != nil {
		bLen = b.Len()
	}
	if aLen != bLen {
		return false
	}
	if aLen == 0 {
		return true
	}

	equal := true
	a.Foreach(func(name string, t Type) {
		otherType, ok := b.Get(name)
		if !ok || !t.Equal(otherType) {
			equal = false
		}
	})
	return equal
}

var functionFormalSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

var functionKeywordDoc prettier.Doc = prettier.Text("function")
var functionReturnSeparatorDoc prettier.Doc = prettier.Text(": ")

func (t *FunctionType) Doc() prettier.Doc {
	var formalDocs []prettier.Doc

	if t.NominalType != nil {
		formalDocs = append(
			formalDocs,
			prettier.Concat{
				prettier.Text("new:"),
				t.NominalType.Doc(),
			},
		)
	}

	if t.ReceiverType != nil {
		formalDocs = append(
			formalDocs,
			prettier.Concat{
				prettier.Text("this:"),
				t.ReceiverType.Doc(),
			},
		)
	}

	for _, formal := range t.RequiredFormals {
		formalDocs = append(formalDocs, formal.Doc())
	}

	for _, formal := range t.OptionalFormals {
		formalDocs = append(
			formalDocs,
			prettier.Concat{
				formal.Doc(),
				prettier.Text("="),
			},
		)
	}

	if t.RestFormals != nil {
		formalDocs = append(
			formalDocs,
			prettier.Concat{
				prettier.Text("..."),
				t.RestFormals.Doc(),
			},
		)
	}

	var doc prettier.Concat

	if !t.TypeParameters.IsEmpty() {
		doc = append(
			doc,
			prettier.Text("<"+strings.Join(t.TypeParameters.Names(), ",")+">"),
		)
	}

	// a nil return type means the return type is yet to be inferred
	returnDoc := prettier.Doc(prettier.Text("?"))
	if t.ReturnType != nil {
		returnDoc = t.ReturnType.Doc()
	}

	formalsDoc := prettier.Doc(prettier.Text("()"))
	if len(formalDocs) > 0 {
		formalsDoc = prettier.WrapParentheses(
			prettier.Join(functionFormalSeparatorDoc, formalDocs...),
			prettier.SoftLine{},
		)
	}

	doc = append(
		doc,
		functionKeywordDoc,
		formalsDoc,
		functionReturnSeparatorDoc,
		returnDoc,
	)

	return prettier.Group{
		Doc: doc,
	}
}

func (t *FunctionType) String() string {
	return Prettier(t)
}
