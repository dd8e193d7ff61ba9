// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"context"
	"io"
	"path/filepath"

	"github.com/ManuGH/devtools/internal/settings"
)

// ImplementationFile is the file written by EmitInternalSettingsImplementation.
const ImplementationFile = "InternalSettingsGenerated.cpp"

// EmitInternalSettingsImplementation writes <outputDirectory>/InternalSettingsGenerated.cpp,
// replacing any previous content. The only failure mode is I/O on the
// output path; the caller is expected to abort the build.
func EmitInternalSettingsImplementation(outputDirectory string, set settings.Set) error {
	return emitImplementation(context.Background(), outputDirectory, set)
}

func emitImplementation(ctx context.Context, outputDirectory string, set settings.Set) error {
	path := filepath.Join(outputDirectory, ImplementationFile)
	return writeFile(ctx, path, func(w io.Writer) error {
		return RenderInternalSettingsImplementation(w, set)
	})
}

// RenderInternalSettingsImplementation renders the constructor, destructor,
// resetToConsistentState and one setter per supported descriptor. Every pass
// walks the descriptors in name order.
func RenderInternalSettingsImplementation(w io.Writer, set settings.Set) error {
	eligible, _ := set.Eligible()
	src := newSource(w)

	src.raw(licenseHeader)
	src.line(`#include "config.h"`)
	src.line(`#include "InternalSettingsGenerated.h"`)
	src.blank()
	src.line(`#include "Page.h"`)
	src.line(`#include "Settings.h"`)
	src.blank()
	src.line("namespace WebCore {")
	src.blank()

	src.line("InternalSettingsGenerated::InternalSettingsGenerated(Page* page)")
	src.line("    : m_page(page)")
	for _, d := range eligible {
		src.guarded(settings.ConditionalExpr(d), func() {
			src.line("    , m_", d.Name, "(page->settings().", d.Name, "())")
		})
	}
	src.line("{")
	src.line("}")
	src.blank()

	src.line("InternalSettingsGenerated::~InternalSettingsGenerated()")
	src.line("{")
	src.line("}")
	src.blank()

	src.line("void InternalSettingsGenerated::resetToConsistentState()")
	src.line("{")
	for _, d := range eligible {
		src.guarded(settings.ConditionalExpr(d), func() {
			src.line("    m_page->settings().", settings.SetterName(d), "(m_", d.Name, ");")
		})
	}
	src.line("}")
	src.blank()

	for _, d := range eligible {
		setter := settings.SetterName(d)
		src.line("void InternalSettingsGenerated::", setter, "(", settings.ParamType(d), " ", d.Name, ")")
		src.line("{")
		if expr := settings.ConditionalExpr(d); expr != "" {
			src.line("#if ", expr)
			src.line("    m_page->settings().", setter, "(", d.Name, ");")
			// Keep the parameter referenced when the feature is compiled out.
			src.line("#else")
			src.line("    UNUSED_PARAM(", d.Name, ");")
			src.line("#endif")
		} else {
			src.line("    m_page->settings().", setter, "(", d.Name, ");")
		}
		src.line("}")
		src.blank()
	}

	src.line("} // namespace WebCore")
	return src.flush()
}
