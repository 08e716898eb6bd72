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

// typedump builds the function signatures described by a YAML fixture file
// and prints their normalized types. It doubles as a reference for how a
// driver of sema.FunctionTypeBuilder is expected to handle contract
// violations: report a diagnostic and fall back to the top function.
package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/jasparjs/jaspar/errors"
	"github.com/jasparjs/jaspar/sema"
)

//go:embed signatures.yaml
var exampleSignatures []byte

type signatureFixture struct {
	Name string `yaml:"name"`
	// Kind selects the finalizer: "function" (default) or "declaration"
	Kind           string            `yaml:"kind"`
	Required       []string          `yaml:"required"`
	Optional       []string          `yaml:"optional"`
	Rest           string            `yaml:"rest"`
	Return         string            `yaml:"return"`
	Receiver       string            `yaml:"receiver"`
	Nominal        string            `yaml:"nominal"`
	TypeParameters []string          `yaml:"typeParameters"`
	OuterVars      map[string]string `yaml:"outerVars"`
	Loose          bool              `yaml:"loose"`
	Abstract       bool              `yaml:"abstract"`
}

type fixtureFile struct {
	Signatures []signatureFixture `yaml:"signatures"`
}

// placeholderTypeName marks an optional formal with no known type
const placeholderTypeName = "_"

func parseType(name string) (sema.Type, error) {
	switch name {
	case "unknown", "?":
		return &sema.UnknownType{}, nil
	case "undefined":
		return &sema.UndefinedType{}, nil
	case "bottom":
		return &sema.BottomType{}, nil
	case "void":
		return &sema.VoidType{}, nil
	case "number":
		return &sema.NumberType{}, nil
	case "string":
		return &sema.StringType{}, nil
	case "boolean":
		return &sema.BooleanType{}, nil
	default:
		return nil, fmt.Errorf("unsupported type name: %q", name)
	}
}

func buildFixture(
	commonTypes *sema.CommonTypes,
	fixture signatureFixture,
) (fmt.Stringer, error) {

	builder := sema.NewFunctionTypeBuilder(commonTypes)

	for _, name := range fixture.Required {
		formal, err := parseType(name)
		if err != nil {
			return nil, err
		}
		if err := builder.AddRequiredFormal(formal); err != nil {
			return nil, err
		}
	}

	for _, name := range fixture.Optional {
		if name == placeholderTypeName {
			if err := builder.AddOptionalFormal(nil); err != nil {
				return nil, err
			}
			continue
		}
		formal, err := parseType(name)
		if err != nil {
			return nil, err
		}
		if err := builder.AddOptionalFormal(formal); err != nil {
			return nil, err
		}
	}

	if fixture.Rest != "" {
		rest, err := parseType(fixture.Rest)
		if err != nil {
			return nil, err
		}
		if err := builder.AddRestFormals(rest); err != nil {
			return nil, err
		}
	}

	if fixture.Return != "" {
		returnType, err := parseType(fixture.Return)
		if err != nil {
			return nil, err
		}
		if err := builder.AddReturnType(returnType); err != nil {
			return nil, err
		}
	}

	if fixture.Receiver != "" {
		receiverType, err := parseType(fixture.Receiver)
		if err != nil {
			return nil, err
		}
		builder.AddReceiverType(receiverType)
	}

	if fixture.Nominal != "" {
		nominalType, err := parseType(fixture.Nominal)
		if err != nil {
			return nil, err
		}
		if err := builder.AddNominalType(nominalType); err != nil {
			return nil, err
		}
	}

	if len(fixture.TypeParameters) > 0 {
		err := builder.SetTypeParameters(
			sema.NewTypeParameters(fixture.TypeParameters),
		)
		if err != nil {
			return nil, err
		}
	}

	for name, typeName := range fixture.OuterVars {
		outerVarType, err := parseType(typeName)
		if err != nil {
			return nil, err
		}
		builder.AddOuterVarPrecondition(name, outerVarType)
	}

	if fixture.Loose {
		builder.AddLoose()
	}
	builder.AddAbstract(fixture.Abstract)

	if fixture.Kind == "declaration" {
		return builder.BuildDeclaration()
	}
	return builder.BuildFunction()
}

// dumpFixture builds one signature and renders it.
// Contract violations are handled here, at the driver's boundary:
// the diagnostic is returned and the signature falls back to the
// canonical top function.
func dumpFixture(
	commonTypes *sema.CommonTypes,
	fixture signatureFixture,
) (result string, diagnostic string) {

	built, err := buildFixture(commonTypes, fixture)
	if err != nil {
		if errors.IsInternalError(err) {
			return commonTypes.TopFunction.String(),
				fmt.Sprintf("invalid signature %q: %s", fixture.Name, err)
		}
		return "", fmt.Sprintf("cannot build %q: %s", fixture.Name, err)
	}

	return built.String(), ""
}

func main() {
	contents := exampleSignatures

	if len(os.Args) > 1 {
		var err error
		contents, err = os.ReadFile(os.Args[1])
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%s\n", colorizeError(err.Error()))
			os.Exit(1)
		}
	}

	var file fixtureFile
	if err := yaml.Unmarshal(contents, &file); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s\n", colorizeError(err.Error()))
		os.Exit(1)
	}

	commonTypes := sema.NewCommonTypes()

	for _, fixture := range file.Signatures {
		result, diagnostic := dumpFixture(commonTypes, fixture)
		if diagnostic != "" {
			_, _ = fmt.Fprintf(os.Stderr, "%s\n", colorizeError(diagnostic))
		}
		if result != "" {
			fmt.Printf("%s: %s\n", fixture.Name, colorizeResult(result))
		}
	}
}
