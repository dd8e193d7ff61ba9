// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"context"
	"io"
	"path/filepath"

	"github.com/ManuGH/devtools/internal/settings"
)

// HeaderFile is the file written by EmitInternalSettingsHeader.
const HeaderFile = "InternalSettingsGenerated.h"

// EmitInternalSettingsHeader writes the class declaration matching the
// implementation file.
func EmitInternalSettingsHeader(outputDirectory string, set settings.Set) error {
	return emitHeader(context.Background(), outputDirectory, set)
}

func emitHeader(ctx context.Context, outputDirectory string, set settings.Set) error {
	path := filepath.Join(outputDirectory, HeaderFile)
	return writeFile(ctx, path, func(w io.Writer) error {
		return RenderInternalSettingsHeader(w, set)
	})
}

// RenderInternalSettingsHeader renders the class declaration. Setter
// declarations are unguarded because their definitions always exist; the
// saved-value members are guarded like the constructor initializers.
func RenderInternalSettingsHeader(w io.Writer, set settings.Set) error {
	eligible, _ := set.Eligible()
	src := newSource(w)

	src.raw(licenseHeader)
	src.line("#pragma once")
	src.blank()
	src.line("#include <wtf/RefCounted.h>")
	src.line("#include <wtf/text/WTFString.h>")
	src.blank()
	src.line("namespace WebCore {")
	src.blank()
	src.line("class Page;")
	src.blank()
	src.line("class InternalSettingsGenerated : public RefCounted<InternalSettingsGenerated> {")
	src.line("public:")
	src.line("    explicit InternalSettingsGenerated(Page*);")
	src.line("    virtual ~InternalSettingsGenerated();")
	src.blank()
	src.line("    void resetToConsistentState();")
	src.blank()
	for _, d := range eligible {
		src.line("    void ", settings.SetterName(d), "(", settings.ParamType(d), " ", d.Name, ");")
	}
	if len(eligible) > 0 {
		src.blank()
	}
	src.line("private:")
	src.line("    Page* m_page;")
	if len(eligible) > 0 {
		src.blank()
	}
	for _, d := range eligible {
		src.guarded(settings.ConditionalExpr(d), func() {
			src.line("    ", d.Type, " m_", d.Name, ";")
		})
	}
	src.line("};")
	src.blank()
	src.line("} // namespace WebCore")
	return src.flush()
}
