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

package main

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasparjs/jaspar/sema"
)

func TestEmbeddedSignaturesParse(t *testing.T) {

	t.Parallel()

	var file fixtureFile
	err := yaml.Unmarshal(exampleSignatures, &file)
	require.NoError(t, err)
	require.NotEmpty(t, file.Signatures)

	commonTypes := sema.NewCommonTypes()

	for _, fixture := range file.Signatures {
		result, diagnostic := dumpFixture(commonTypes, fixture)
		assert.Empty(t, diagnostic)
		assert.NotEmpty(t, result)
	}
}

func TestBuildFixture(t *testing.T) {

	t.Parallel()

	commonTypes := sema.NewCommonTypes()

	built, err := buildFixture(
		commonTypes,
		signatureFixture{
			Name:     "greet",
			Required: []string{"string"},
			Optional: []string{"number"},
			Return:   "void",
		},
	)
	require.NoError(t, err)

	assert.Equal(t,
		"function(string, number|undefined=): void",
		built.String(),
	)
}

func TestDumpFixtureRecoversFromContractViolation(t *testing.T) {

	t.Parallel()

	commonTypes := sema.NewCommonTypes()

	// a loose declaration violates the builder contract;
	// the driver recovers with the top function and a diagnostic
	result, diagnostic := dumpFixture(
		commonTypes,
		signatureFixture{
			Name:   "broken",
			Kind:   "declaration",
			Loose:  true,
			Return: "void",
		},
	)

	assert.Equal(t, commonTypes.TopFunction.String(), result)
	assert.Contains(t, diagnostic, "broken")
}

func TestDumpFixtureReportsUnknownTypeName(t *testing.T) {

	t.Parallel()

	commonTypes := sema.NewCommonTypes()

	result, diagnostic := dumpFixture(
		commonTypes,
		signatureFixture{
			Name:     "bad",
			Required: []string{"bigint"},
		},
	)

	assert.Empty(t, result)
	assert.Contains(t, diagnostic, "bigint")
}
