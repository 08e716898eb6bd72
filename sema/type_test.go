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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {

	t.Parallel()

	t.Run("equal types join to themselves", func(t *testing.T) {
		t.Parallel()

		joined := Join(&NumberType{}, &NumberType{})
		assert.True(t, joined.Equal(&NumberType{}))
	})

	t.Run("unknown absorbs", func(t *testing.T) {
		t.Parallel()

		joined := Join(&UnknownType{}, &NumberType{})
		assert.True(t, joined.IsUnknown())

		joined = Join(&NumberType{}, &UnknownType{})
		assert.True(t, joined.IsUnknown())
	})

	t.Run("bottom is the identity", func(t *testing.T) {
		t.Parallel()

		joined := Join(&BottomType{}, &NumberType{})
		assert.True(t, joined.Equal(&NumberType{}))

		joined = Join(&NumberType{}, &BottomType{})
		assert.True(t, joined.Equal(&NumberType{}))
	})

	t.Run("distinct types form a union", func(t *testing.T) {
		t.Parallel()

		joined := Join(&NumberType{}, &StringType{})

		union, ok := joined.(*UnionType)
		require.True(t, ok)
		require.Len(t, union.Members, 2)
		assert.True(t, union.ContainsMember(&NumberType{}))
		assert.True(t, union.ContainsMember(&StringType{}))
	})

	t.Run("unions flatten and deduplicate", func(t *testing.T) {
		t.Parallel()

		joined := Join(
			Join(&NumberType{}, &StringType{}),
			Join(&StringType{}, &BooleanType{}),
		)

		union, ok := joined.(*UnionType)
		require.True(t, ok)
		require.Len(t, union.Members, 3)
		assert.True(t, union.ContainsMember(&NumberType{}))
		assert.True(t, union.ContainsMember(&StringType{}))
		assert.True(t, union.ContainsMember(&BooleanType{}))
	})

	t.Run("commutative up to equality", func(t *testing.T) {
		t.Parallel()

		properties := gopter.NewProperties(nil)

		properties.Property("join(a, b) = join(b, a)", prop.ForAll(
			func(i, j int) bool {
				a := formalTypeChoices[i]
				b := formalTypeChoices[j]
				return Join(a, b).Equal(Join(b, a))
			},
			gen.IntRange(0, len(formalTypeChoices)-1),
			gen.IntRange(0, len(formalTypeChoices)-1),
		))

		properties.TestingRun(t)
	})
}

func TestUnionTypeEqual(t *testing.T) {

	t.Parallel()

	a := Join(&NumberType{}, &StringType{})
	b := Join(&StringType{}, &NumberType{})

	// member order does not matter
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c := Join(&NumberType{}, &BooleanType{})
	assert.False(t, a.Equal(c))
}

func TestUnionTypeString(t *testing.T) {

	t.Parallel()

	joined := Join(&NumberType{}, &UndefinedType{})
	assert.Equal(t, "number|undefined", joined.String())
}

func TestFunctionTypeString(t *testing.T) {

	t.Parallel()

	commonTypes := NewCommonTypes()

	t.Run("full signature", func(t *testing.T) {
		t.Parallel()

		builder := NewFunctionTypeBuilder(commonTypes)
		require.NoError(t, builder.AddRequiredFormal(&NumberType{}))
		require.NoError(t, builder.AddOptionalFormal(&StringType{}))
		require.NoError(t, builder.AddRestFormals(&BooleanType{}))
		require.NoError(t, builder.AddReturnType(&VoidType{}))

		functionType, err := builder.BuildFunction()
		require.NoError(t, err)

		assert.Equal(t,
			"function(number, string|undefined=, ...boolean): void",
			functionType.String(),
		)
	})

	t.Run("top function", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			"function(...?): ?",
			commonTypes.TopFunction.String(),
		)
	})

	t.Run("receiver and nominal types", func(t *testing.T) {
		t.Parallel()

		builder := NewFunctionTypeBuilder(commonTypes)
		require.NoError(t, builder.AddNominalType(&NumberType{}))
		builder.AddReceiverType(&StringType{})
		require.NoError(t, builder.AddReturnType(&VoidType{}))

		functionType, err := builder.BuildFunction()
		require.NoError(t, err)

		assert.Equal(t,
			"function(new:number, this:string): void",
			functionType.String(),
		)
	})

	t.Run("type parameters", func(t *testing.T) {
		t.Parallel()

		builder := NewFunctionTypeBuilder(commonTypes)
		require.NoError(t,
			builder.SetTypeParameters(NewTypeParameters([]string{"T", "U"})),
		)
		require.NoError(t, builder.AddReturnType(&VoidType{}))

		functionType, err := builder.BuildFunction()
		require.NoError(t, err)

		assert.Equal(t,
			"<T,U>function(): void",
			functionType.String(),
		)
	})
}

func TestFunctionTypeEqual(t *testing.T) {

	t.Parallel()

	commonTypes := NewCommonTypes()

	newSignature := func(ret Type) *FunctionType {
		builder := NewFunctionTypeBuilder(commonTypes)
		require.NoError(t, builder.AddRequiredFormal(&NumberType{}))
		require.NoError(t, builder.AddReturnType(ret))

		functionType, err := builder.BuildFunction()
		require.NoError(t, err)
		return functionType
	}

	a := newSignature(&VoidType{})
	b := newSignature(&VoidType{})
	c := newSignature(&NumberType{})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(&NumberType{}))
}

func TestDeclaredFunctionTypeEqual(t *testing.T) {

	t.Parallel()

	commonTypes := NewCommonTypes()

	newDeclaration := func(abstract bool) *DeclaredFunctionType {
		builder := NewFunctionTypeBuilder(commonTypes)
		require.NoError(t, builder.AddRequiredFormal(&NumberType{}))
		require.NoError(t, builder.AddReturnType(&VoidType{}))
		builder.AddAbstract(abstract)

		declaration, err := builder.BuildDeclaration()
		require.NoError(t, err)
		return declaration
	}

	assert.True(t, newDeclaration(false).Equal(newDeclaration(false)))
	assert.False(t, newDeclaration(false).Equal(newDeclaration(true)))
}

func TestDeclaredFunctionTypeString(t *testing.T) {

	t.Parallel()

	commonTypes := NewCommonTypes()

	t.Run("missing return type renders as unknown", func(t *testing.T) {
		t.Parallel()

		builder := NewFunctionTypeBuilder(commonTypes)
		require.NoError(t, builder.AddRequiredFormal(&StringType{}))

		declaration, err := builder.BuildDeclaration()
		require.NoError(t, err)

		assert.Nil(t, declaration.ReturnType)
		assert.Equal(t, "function(string): ?", declaration.String())
	})
}
