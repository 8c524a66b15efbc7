// SPDX-License-Identifier: MIT
// Package odem: XML schema.
//
// Attribute vocabularies are typed strings so that Validate can reject
// values the exporter never writes.

package odem

import (
	"encoding/xml"
	"fmt"
)

// Visibility of a type.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityPrivate   Visibility = "private"
	VisibilityProtected Visibility = "protected"
	VisibilityDefault   Visibility = "default"
)

// TypeKind classifies a type declaration.
type TypeKind string

const (
	TypeClass      TypeKind = "class"
	TypeInterface  TypeKind = "interface"
	TypeEnum       TypeKind = "enum"
	TypeAnnotation TypeKind = "annotation"
)

// DependencyKind classifies a depends-on relation.
type DependencyKind string

const (
	DependencyUses       DependencyKind = "uses"
	DependencyExtends    DependencyKind = "extends"
	DependencyImplements DependencyKind = "implements"
)

// Document is a decoded ODEM file.
type Document struct {
	XMLName xml.Name `xml:"ODEM"`
	Header  Header   `xml:"header"`
	Context Context  `xml:"context"`
}

// Header identifies the tool that wrote the document.
type Header struct {
	CreatedBy CreatedBy `xml:"created-by"`
}

// CreatedBy names the exporter and the provider.
type CreatedBy struct {
	Exporter Exporter `xml:"exporter"`
	Provider string   `xml:"provider"`
}

// Exporter is the exporting tool and its version.
type Exporter struct {
	Version string `xml:"version,attr"`
	Name    string `xml:",chardata"`
}

// Context groups the analysed containers.
type Context struct {
	Name       string      `xml:"name,attr"`
	Containers []Container `xml:"container"`
}

// Container is one analysed archive or directory.
type Container struct {
	Name           string      `xml:"name,attr"`
	Classification string      `xml:"classification,attr"`
	Namespaces     []Namespace `xml:"namespace"`
}

// Namespace is a package.
type Namespace struct {
	Name  string `xml:"name,attr"`
	Types []Type `xml:"type"`
}

// Type is a class, interface, enum or annotation.
type Type struct {
	Name           string       `xml:"name,attr"`
	Visibility     Visibility   `xml:"visibility,attr"`
	Classification TypeKind     `xml:"classification,attr"`
	Dependencies   Dependencies `xml:"dependencies"`
}

// Dependencies lists the outgoing references of a type. Count is the
// exporter's own tally; a zero count means the list is ignored.
type Dependencies struct {
	Count     int          `xml:"count,attr"`
	DependsOn []Dependency `xml:"depends-on"`
}

// Dependency is a single depends-on reference.
type Dependency struct {
	Name           string         `xml:"name,attr"`
	Classification DependencyKind `xml:"classification,attr"`
}

// Container returns the single container of the document.
func (d *Document) Container() (*Container, error) {
	if n := len(d.Context.Containers); n != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrContainerCount, n)
	}

	return &d.Context.Containers[0], nil
}

// Validate checks every attribute vocabulary. Empty attributes are
// accepted; some exporters omit visibility on synthetic types.
func (d *Document) Validate() error {
	for _, c := range d.Context.Containers {
		for _, ns := range c.Namespaces {
			for _, t := range ns.Types {
				switch t.Visibility {
				case "", VisibilityPublic, VisibilityPrivate, VisibilityProtected, VisibilityDefault:
				default:
					return fmt.Errorf("%w: type %q: visibility %q", ErrInvalidDocument, t.Name, t.Visibility)
				}
				switch t.Classification {
				case "", TypeClass, TypeInterface, TypeEnum, TypeAnnotation:
				default:
					return fmt.Errorf("%w: type %q: classification %q", ErrInvalidDocument, t.Name, t.Classification)
				}
				for _, dep := range t.Dependencies.DependsOn {
					switch dep.Classification {
					case "", DependencyUses, DependencyExtends, DependencyImplements:
					default:
						return fmt.Errorf("%w: %q -> %q: classification %q",
							ErrInvalidDocument, t.Name, dep.Name, dep.Classification)
					}
				}
			}
		}
	}

	return nil
}
