package e2e

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/loomlang/loom/generator/graphql"
	"github.com/loomlang/loom/generator/prisma"
	"github.com/loomlang/loom/generator/typescript"
	"github.com/loomlang/loom/lsl/diagnostics"
	"github.com/loomlang/loom/lsl/format"
	"github.com/loomlang/loom/lsl/ir"
	"github.com/loomlang/loom/lsl/resolver"
)

// gallerySchema is a complete application: two related models, two enums, a
// plain query, a filtered query, a component, and a route.
const gallerySchema = `model Image {
  title: String
  url: String
  tags: [String]
  category: Category
  country: Country
}

model Country {
  name: CountryName
  images: [Image]
}

enum Category {
  News
  Sports
  Travel
}

enum CountryName {
  France
  Japan
  Peru
}

query images: [Image] {
  image {
    title
    url
    category
    country {
      name
    }
  }
}

query imagesByCountryName($name: CountryName): [Image] {
  image {
    title
    country {
      name
    }
  }
  where {
    image {
      country {
        name {
          equals: $name
        }
      }
    }
  }
}

component ImageList {
  path: components/ImageList
}

route /images {
  root: ImageList
  title: Images
}
`

// PipelineSuite drives whole schemas through resolution and every emitter.
type PipelineSuite struct {
	suite.Suite
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

func (s *PipelineSuite) compile(text string) *ir.Schema {
	schema, diags := resolver.ResolveString("app.loom", text)
	s.Require().Falsef(diags.HasErrors(), "unexpected diagnostics:\n%s", diags.ToPrettyString("app.loom", text))
	s.Require().NotNil(schema)
	return schema
}

func (s *PipelineSuite) TestGalleryTypeScript() {
	schema := s.compile(gallerySchema)

	expected := `interface Country {
    id: number;
    createdAt: Date;
    name: CountryName;
    images: Array<Image>;
}

interface Image {
    id: number;
    createdAt: Date;
    title: string;
    url: string;
    tags: Array<string>;
    category: Category;
    country: Country;
}

enum Category {
    News = "News",
    Sports = "Sports",
    Travel = "Travel",
}

enum CountryName {
    France = "France",
    Japan = "Japan",
    Peru = "Peru",
}
`

	s.Equal(expected, typescript.Generate(schema))
}

func (s *PipelineSuite) TestGalleryGraphQL() {
	schema := s.compile(gallerySchema)

	expected := `query images {
  image {
    title
    url
    category
    country {
      name
    }
  }
}

query imagesByCountryName($name: CountryName!) {
  image(where: {country: {name: {equals: $name}}}) {
    title
    country {
      name
    }
  }
}
`

	s.Equal(expected, graphql.Generate(schema))
}

func (s *PipelineSuite) TestGalleryPrisma() {
	schema := s.compile(gallerySchema)

	expected := `datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

generator client {
  provider = "prisma-client-js"
}

model Country {
  id        Int         @id @default(autoincrement())
  createdAt DateTime    @default(now())
  name      CountryName
  images    Image[]
}

model Image {
  id        Int      @id @default(autoincrement())
  createdAt DateTime @default(now())
  title     String
  url       String
  tags      String[]
  category  Category
  country   Country  @relation(fields: [countryId], references: [id])
  countryId Int
}

enum Category {
  News
  Sports
  Travel
}

enum CountryName {
  France
  Japan
  Peru
}
`

	s.Equal(expected, prisma.Generate(schema))
}

// Reformatting must not change what a schema compiles to.
func (s *PipelineSuite) TestReformatPreservesArtifacts() {
	formatted, err := format.Reformat(gallerySchema, 2)
	s.Require().NoError(err)

	original := s.compile(gallerySchema)
	reformatted := s.compile(formatted)

	s.Equal(typescript.Generate(original), typescript.Generate(reformatted))
	s.Equal(graphql.Generate(original), graphql.Generate(reformatted))
	s.Equal(prisma.Generate(original), prisma.Generate(reformatted))
}

func (s *PipelineSuite) TestEmittersAreDeterministic() {
	first := s.compile(gallerySchema)
	second := s.compile(gallerySchema)

	s.Equal(typescript.Generate(first), typescript.Generate(second))
	s.Equal(graphql.Generate(first), graphql.Generate(second))
	s.Equal(prisma.Generate(first), prisma.Generate(second))
}

// A broken schema reports every independent error in one run and produces no
// artifacts at all.
func (s *PipelineSuite) TestBrokenSchemaCollectsEveryError() {
	text := `model Image {
  title: Caption
}

model Empty {
}

query images: [Image] {
  image {
    license
  }
}
`

	schema, diags := resolver.ResolveString("app.loom", text)

	s.Nil(schema)
	s.Require().True(diags.HasErrors())

	kinds := make([]diagnostics.ErrorKind, 0, len(diags.Errors()))
	for _, err := range diags.Errors() {
		kinds = append(kinds, err.Kind())
	}

	s.ElementsMatch([]diagnostics.ErrorKind{
		diagnostics.ErrUnknownReference,
		diagnostics.ErrEmptyModel,
		diagnostics.ErrSchemaFieldNotFound,
	}, kinds)
}
