package carousel

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"codeberg.org/go-pdf/fpdf"
)

// slideNameFormat names image-set entries. The 1-based index keeps slide
// order recoverable after export.
const slideNameFormat = "carousel_slide_%d.png"

// Assemble packages rendered slides into a single document. Slide order is
// preserved; page or entry count always equals the slide count. Assembly is
// deterministic: the same slides yield byte-identical output.
// Returns ErrNoSlides for an empty sequence — an empty document is never
// produced silently.
func Assemble(slides []RenderedSlide, mode AssemblyMode) (*Document, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	switch mode {
	case ModeImageSet:
		return assembleImageSet(slides)
	default:
		return assemblePDF(slides)
	}
}

// assembleImageSet packs each slide PNG into a zip archive. Entry headers
// carry no modification time, keeping archives byte-stable across runs.
func assembleImageSet(slides []RenderedSlide) (*Document, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i, s := range slides {
		header := &zip.FileHeader{
			Name:   fmt.Sprintf(slideNameFormat, i+1),
			Method: zip.Deflate,
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("creating zip entry %d: %w", i+1, err)
		}
		if _, err := w.Write(s.PNG); err != nil {
			return nil, fmt.Errorf("writing zip entry %d: %w", i+1, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing zip archive: %w", err)
	}

	return &Document{Mode: ModeImageSet, Data: buf.Bytes(), Pages: len(slides)}, nil
}

// assemblePDF builds one page per slide. Page size equals the slide's pixel
// dimensions at one point per pixel (the convention the carousel has always
// used), and the raster is placed at full bleed: no scaling, no margin, so
// the PDF page is pixel-faithful to the PNG export.
func assemblePDF(slides []RenderedSlide) (*Document, error) {
	first := slides[0]
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: float64(first.Width), Ht: float64(first.Height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	// The format mandates date fields; pin them so output is byte-stable.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())

	for i, s := range slides {
		w, h := float64(s.Width), float64(s.Height)
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})

		name := fmt.Sprintf("slide-%d", i+1)
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(s.PNG))
		pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	return &Document{Mode: ModePDF, Data: buf.Bytes(), Pages: pdf.PageCount()}, nil
}
