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
)

// CommonTypes is the registry of canonical type singletons shared by one
// checker run. It is constructed once and read-only afterwards.
type CommonTypes struct {
	Unknown   Type
	Undefined Type
	Bottom    Type

	// TopFunction is the canonical maximally-unconstrained function type,
	// function(...?): ?. FunctionTypeBuilder.BuildFunction returns it for
	// every builder describing that shape, so consumers can use identity
	// comparison against it as a fast path (see IsTopFunction).
	TopFunction *FunctionType
}

func NewCommonTypes() *CommonTypes {
	commonTypes := &CommonTypes{
		Unknown:   &UnknownType{},
		Undefined: &UndefinedType{},
		Bottom:    &BottomType{},
	}

	commonTypes.TopFunction = &FunctionType{
		RestFormals:    commonTypes.Unknown,
		ReturnType:     commonTypes.Unknown,
		OuterVars:      orderedmap.New[string, Type](0),
		TypeParameters: EmptyTypeParameters,
	}

	return commonTypes
}

// IsTopFunction returns true if the given function type is the canonical
// top function instance. Comparison is by identity, not by structure:
// a structurally equal function type constructed elsewhere is not the
// canonical instance.
func (t *CommonTypes) IsTopFunction(functionType *FunctionType) bool {
	return functionType == t.TopFunction
}
