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

// Type is the interface all jaspar types implement.
//
// Types are immutable once constructed. Equality is structural,
// except for the canonical top function, which is compared by identity
// (see CommonTypes.IsTopFunction).
type Type interface {
	isType()
	// IsUnknown returns true if this is the unknown type,
	// i.e. the checker has no information about the value.
	IsUnknown() bool
	// IsBottom returns true if this is the bottom type,
	// i.e. the type of expressions that cannot produce a value.
	IsBottom() bool
	Equal(other Type) bool
	Doc() prettier.Doc
	String() string
}

// UnknownType

// UnknownType is the type of expressions the checker has no information about.
// It is both a supertype and a subtype of every type.
type UnknownType struct{}

var _ Type = &UnknownType{}

func (*UnknownType) isType() {}

func (*UnknownType) IsUnknown() bool {
	return true
}

func (*UnknownType) IsBottom() bool {
	return false
}

func (t *UnknownType) Equal(other Type) bool {
	_, ok := other.(*UnknownType)
	return ok
}

func (t *UnknownType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (*UnknownType) String() string {
	return "?"
}

// UndefinedType

// UndefinedType is the type of the `undefined` value,
// and of absent optional arguments.
type UndefinedType struct{}

var _ Type = &UndefinedType{}

func (*UndefinedType) isType() {}

func (*UndefinedType) IsUnknown() bool {
	return false
}

func (*UndefinedType) IsBottom() bool {
	return false
}

func (t *UndefinedType) Equal(other Type) bool {
	_, ok := other.(*UndefinedType)
	return ok
}

func (t *UndefinedType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (*UndefinedType) String() string {
	return "undefined"
}

// BottomType

// BottomType is the type of expressions that cannot produce a value,
// e.g. a function that always throws. It has no values and is a subtype
// of every type.
type BottomType struct{}

var _ Type = &BottomType{}

func (*BottomType) isType() {}

func (*BottomType) IsUnknown() bool {
	return false
}

func (*BottomType) IsBottom() bool {
	return true
}

func (t *BottomType) Equal(other Type) bool {
	_, ok := other.(*BottomType)
	return ok
}

func (t *BottomType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (*BottomType) String() string {
	return "bottom"
}

// VoidType

type VoidType struct{}

var _ Type = &VoidType{}

func (*VoidType) isType() {}

func (*VoidType) IsUnknown() bool {
	return false
}

func (*VoidType) IsBottom() bool {
	return false
}

func (t *VoidType) Equal(other Type) bool {
	_, ok := other.(*VoidType)
	return ok
}

func (t *VoidType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (*VoidType) String() string {
	return "void"
}

// NumberType

type NumberType struct{}

var _ Type = &NumberType{}

func (*NumberType) isType() {}

func (*NumberType) IsUnknown() bool {
	return false
}

func (*NumberType) IsBottom() bool {
	return false
}

func (t *NumberType) Equal(other Type) bool {
	_, ok := other.(*NumberType)
	return ok
}

func (t *NumberType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (*NumberType) String() string {
	return "number"
}

// StringType

type StringType struct{}

var _ Type = &StringType{}

func (*StringType) isType() {}

func (*StringType) IsUnknown() bool {
	return false
}

func (*StringType) IsBottom() bool {
	return false
}

func (t *StringType) Equal(other Type) bool {
	_, ok := other.(*StringType)
	return ok
}

func (t *StringType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (*StringType) String() string {
	return "string"
}

// BooleanType

type BooleanType struct{}

var _ Type = &BooleanType{}

func (*BooleanType) isType() {}

func (*BooleanType) IsUnknown() bool {
	return false
}

func (*BooleanType) IsBottom() bool {
	return false
}

func (t *BooleanType) Equal(other Type) bool {
	_, ok := other.(*BooleanType)
	return ok
}

func (t *BooleanType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (*BooleanType) String() string {
	return "boolean"
}

// UnionType

// UnionType is the type of values that may have one of several types.
// Members are kept flat and deduplicated; their order is the order in
// which they were joined. Member equality is set-based.
type UnionType struct {
	Members []Type
}

var _ Type = &UnionType{}

func (*UnionType) isType() {}

func (*UnionType) IsUnknown() bool {
	return false
}

func (*UnionType) IsBottom() bool {
	return false
}

func (t *UnionType) Equal(other Type) bool {
	otherUnion, ok := other.(*UnionType)
	if !ok {
		return false
	}

	if len(t.Members) != len(otherUnion.Members) {
		return false
	}

	for _, member := range t.Members {
		if !otherUnion.ContainsMember(member) {
			return false
		}
	}

	return true
}

// ContainsMember returns true if the union has a member equal to the given type.
func (t *UnionType) ContainsMember(other Type) bool {
	for _, member := range t.Members {
		if member.Equal(other) {
			return true
		}
	}
	return false
}

var unionTypeSeparatorDoc prettier.Doc = prettier.Text("|")

func (t *UnionType) Doc() prettier.Doc {
	memberDocs := make([]prettier.Doc, len(t.Members))
	for i, member := range t.Members {
		memberDocs[i] = member.Doc()
	}
	return prettier.Join(unionTypeSeparatorDoc, memberDocs...)
}

func (t *UnionType) String() string {
	return Prettier(t)
}

// Join returns the least common supertype of the two given types:
// equal types join to themselves, the unknown type absorbs everything,
// the bottom type is the identity, and any other combination is a
// flattened, deduplicated union.
func Join(a, b Type) Type {
	if a.IsUnknown() {
		return a
	}
	if b.IsUnknown() {
		return b
	}
	if a.IsBottom() {
		return b
	}
	if b.IsBottom() {
		return a
	}
	if a.Equal(b) {
		return a
	}

	var members []Type
	members = appendUnionMember(members, a)
	members = appendUnionMember(members, b)
	if len(members) == 1 {
		return members[0]
	}
	return &UnionType{Members: members}
}

func appendUnionMember(members []Type, t Type) []Type {
	if union, ok := t.(*UnionType); ok {
		for _, member := range union.Members {
			members = appendUnionMember(members, member)
		}
		return members
	}

	for _, existing := range members {
		if existing.Equal(t) {
			return members
		}
	}

	return append(members, t)
}
