// seehuhn.de/go/shapesheet - PDF sheets with randomly placed shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfdoc

import (
	"golang.org/x/text/language"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/shapesheet/render"
)

// pdfProperties is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfProperties struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// mediaIDs holds the identifiers of the XMP media management namespace.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/xmpMM/
type mediaIDs struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/mm/"`
	_          xmp.Prefix    `xmp:"xmpMM"`
	DocumentID xmp.Text
	InstanceID xmp.Text
}

var xDefault = language.MustParse("x-default")

// writeMetadata embeds an XMP metadata stream for the document catalog.
func writeMetadata(out *pdf.Writer, info *render.Info) error {
	if pdf.CheckVersion(out, "XMP metadata", pdf.V1_4) != nil {
		// The information dictionary is all we can do for old versions.
		return nil
	}

	dc := &xmp.DublinCore{}
	dc.Title.Set(xDefault, info.Title)
	if info.Subject != "" {
		dc.Description.Set(xDefault, info.Subject)
	}
	if info.Creator != "" {
		dc.Creator.Append(xmp.NewProperName(info.Creator))
	}

	basic := &xmp.Basic{}
	if !info.Created.IsZero() {
		basic.CreateDate = xmp.NewDate(info.Created)
		basic.ModifyDate = xmp.NewDate(info.Created)
	}

	props := &pdfProperties{}
	props.Keywords = xmp.NewText("shapes")
	if info.Producer != "" {
		props.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, props)
	if err != nil {
		return err
	}
	if info.DocumentID != "" || info.InstanceID != "" {
		ids := &mediaIDs{}
		if info.DocumentID != "" {
			ids.DocumentID = xmp.NewText("uuid:" + info.DocumentID)
		}
		if info.InstanceID != "" {
			ids.InstanceID = xmp.NewText("uuid:" + info.InstanceID)
		}
		err = packet.Set(ids)
		if err != nil {
			return err
		}
	}

	ref := out.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := out.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	err = packet.Write(stm, nil)
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	out.GetMeta().Catalog.Metadata = ref
	return nil
}
