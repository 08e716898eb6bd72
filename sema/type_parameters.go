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

// TypeParameters is an immutable ordered list of generic type parameter names.
type TypeParameters struct {
	names []string
}

// EmptyTypeParameters is the canonical empty type parameter list.
var EmptyTypeParameters = &TypeParameters{}

// NewTypeParameters returns a type parameter list with the given names.
// An empty or nil name list yields the canonical empty list.
func NewTypeParameters(names []string) *TypeParameters {
	if len(names) == 0 {
		return EmptyTypeParameters
	}

	copied := make([]string, len(names))
	copy(copied, names)
	return &TypeParameters{names: copied}
}

func (p *TypeParameters) IsEmpty() bool {
	return p == nil || len(p.names) == 0
}

func (p *TypeParameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Contains returns true if the list declares a parameter with the given name.
func (p *TypeParameters) Contains(name string) bool {
	if p == nil {
		return false
	}
	for _, existing := range p.names {
		if existing == name {
			return true
		}
	}
	return false
}

// Names returns a copy of the parameter names, in declaration order.
func (p *TypeParameters) Names() []string {
	if p == nil || len(p.names) == 0 {
		return nil
	}
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

func (p *TypeParameters) Equal(other *TypeParameters) bool {
	if p.Len() != other.Len() {
		return false
	}
	for i, name := range p.names {
		if other.names[i] != name {
			return false
		}
	}
	return true
}
