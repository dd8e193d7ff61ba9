// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"context"
	"io"
	"path/filepath"

	"github.com/ManuGH/devtools/internal/settings"
)

// IDLFile is the file written by EmitInternalSettingsIDL.
const IDLFile = "InternalSettingsGenerated.idl"

// EmitInternalSettingsIDL writes the interface exposing the setters to tests.
func EmitInternalSettingsIDL(outputDirectory string, set settings.Set) error {
	return emitIDL(context.Background(), outputDirectory, set)
}

func emitIDL(ctx context.Context, outputDirectory string, set settings.Set) error {
	path := filepath.Join(outputDirectory, IDLFile)
	return writeFile(ctx, path, func(w io.Writer) error {
		return RenderInternalSettingsIDL(w, set)
	})
}

// RenderInternalSettingsIDL renders one operation per supported descriptor.
func RenderInternalSettingsIDL(w io.Writer, set settings.Set) error {
	eligible, _ := set.Eligible()
	src := newSource(w)

	src.raw(licenseHeader)
	src.line("[")
	src.line("    NoInterfaceObject,")
	src.line("] interface InternalSettingsGenerated {")
	for _, d := range eligible {
		idlType, _ := settings.IDLType(d)
		src.line("    void ", settings.SetterName(d), "(", idlType, " ", d.Name, ");")
	}
	src.line("};")
	return src.flush()
}
