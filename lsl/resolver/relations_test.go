package resolver

import (
	"testing"

	"github.com/loomlang/loom/lsl/ir"
)

func TestOneToOneRelation(t *testing.T) {
	input := `
model User {
  name: String
  profile: Profile
}

model Profile {
  bio: String
  user: User
}
`
	schema := resolveValid(t, input)

	profile := schema.Models["User"].FindField("profile")
	user := schema.Models["Profile"].FindField("user")

	if profile.Relation.Kind != ir.RelationOneToOne {
		t.Errorf("Expected one-to-one, got %s", profile.Relation.Kind)
	}
	if user.Relation.Kind != ir.RelationOneToOne {
		t.Errorf("Expected one-to-one, got %s", user.Relation.Kind)
	}

	// Exactly one side carries the key: the model whose name sorts later.
	if profile.Relation.OwnsKey == user.Relation.OwnsKey {
		t.Fatal("Expected exactly one side of a one-to-one relation to own the key")
	}
	if !profile.Relation.OwnsKey {
		t.Error("Expected User to own the key, User sorts after Profile")
	}
}

func TestOneToManyRelation(t *testing.T) {
	input := `
model Author {
  name: String
  posts: [Post]
}

model Post {
  title: String
  author: Author
}
`
	schema := resolveValid(t, input)

	posts := schema.Models["Author"].FindField("posts")
	author := schema.Models["Post"].FindField("author")

	if posts.Relation.Kind != ir.RelationOneToMany {
		t.Errorf("Expected one-to-many, got %s", posts.Relation.Kind)
	}
	if posts.Relation.OwnsKey {
		t.Error("Expected the array side to not own the key")
	}

	if author.Relation.Kind != ir.RelationOneToMany {
		t.Errorf("Expected one-to-many, got %s", author.Relation.Kind)
	}
	if !author.Relation.OwnsKey {
		t.Error("Expected the singular side to own the key")
	}
}

func TestManyToManyRelation(t *testing.T) {
	input := `
model Post {
  title: String
  tags: [Tag]
}

model Tag {
  name: String
  posts: [Post]
}
`
	schema := resolveValid(t, input)

	tags := schema.Models["Post"].FindField("tags")
	posts := schema.Models["Tag"].FindField("posts")

	if tags.Relation.Kind != ir.RelationManyToMany {
		t.Errorf("Expected many-to-many, got %s", tags.Relation.Kind)
	}
	if posts.Relation.Kind != ir.RelationManyToMany {
		t.Errorf("Expected many-to-many, got %s", posts.Relation.Kind)
	}
	if tags.Relation.OwnsKey || posts.Relation.OwnsKey {
		t.Error("Expected neither side of a many-to-many relation to own the key")
	}
}

func TestUnidirectionalReference(t *testing.T) {
	input := `
model Image {
  title: String
  country: Country
}

model Country {
  name: String
}
`
	schema := resolveValid(t, input)

	country := schema.Models["Image"].FindField("country")
	if country.Relation.Kind != ir.RelationReference {
		t.Errorf("Expected a one-way reference, got %s", country.Relation.Kind)
	}
	if !country.Relation.OwnsKey {
		t.Error("Expected the referencing side to own the key")
	}

	// The referenced model gains no relation of its own.
	for _, field := range schema.Models["Country"].Fields {
		if field.Relation != nil {
			t.Errorf("Expected no relationship metadata on Country.%s", field.Name)
		}
	}
}

func TestOwnedComposition(t *testing.T) {
	input := `
model Image {
  title: String
  dimensions: @Dimensions
}

model Dimensions {
  width: Int
  height: Int
}
`
	schema := resolveValid(t, input)

	dimensions := schema.Models["Image"].FindField("dimensions")
	if dimensions.Relation.Kind != ir.RelationOwned {
		t.Errorf("Expected an owned composition, got %s", dimensions.Relation.Kind)
	}
	if dimensions.Relation.OwnsKey {
		t.Error("Expected the key on the owned model, not the owner")
	}
	if dimensions.Type.Kind != ir.TypeOwnedModel {
		t.Errorf("Expected an owned model type, got %s", dimensions.Type.Kind)
	}
}

func TestOwnedReferenceIsNotReciprocal(t *testing.T) {
	input := `
model Gallery {
  cover: @Image
}

model Image {
  gallery: Gallery
}
`
	schema := resolveValid(t, input)

	// Gallery.cover owns Image; Image.gallery sees no reciprocal reference
	// because ownership is one-way.
	gallery := schema.Models["Image"].FindField("gallery")
	if gallery.Relation.Kind != ir.RelationReference {
		t.Errorf("Expected a one-way reference, got %s", gallery.Relation.Kind)
	}
}

func TestSelfRelation(t *testing.T) {
	input := `
model Employee {
  name: String
  mentor: Employee
}
`
	schema := resolveValid(t, input)

	mentor := schema.Models["Employee"].FindField("mentor")
	if mentor.Relation.Kind != ir.RelationReference {
		t.Errorf("Expected a one-way self reference, got %s", mentor.Relation.Kind)
	}
}

func TestMutualSelfRelation(t *testing.T) {
	input := `
model Person {
  partner: Person
  admirer: Person
}
`
	schema := resolveValid(t, input)

	partner := schema.Models["Person"].FindField("partner")
	admirer := schema.Models["Person"].FindField("admirer")

	if partner.Relation.Kind != ir.RelationOneToOne {
		t.Errorf("Expected one-to-one, got %s", partner.Relation.Kind)
	}
	if partner.Relation.OwnsKey == admirer.Relation.OwnsKey {
		t.Error("Expected exactly one field of a self relation to own the key")
	}
	if !partner.Relation.OwnsKey {
		t.Error("Expected the key on partner, it sorts after admirer")
	}
}

func TestFirstReciprocalWins(t *testing.T) {
	input := `
model Team {
  members: [Person]
}

model Person {
  team: Team
  formerTeam: Team
}
`
	schema := resolveValid(t, input)

	members := schema.Models["Team"].FindField("members")
	if members.Relation.Kind != ir.RelationOneToMany {
		t.Errorf("Expected one-to-many against the first reciprocal field, got %s", members.Relation.Kind)
	}

	team := schema.Models["Person"].FindField("team")
	formerTeam := schema.Models["Person"].FindField("formerTeam")
	if !team.Relation.OwnsKey || !formerTeam.Relation.OwnsKey {
		t.Error("Expected both singular sides to own their keys")
	}
}

func TestOwnedArray(t *testing.T) {
	input := `
model Survey {
  answers: [@Answer]
}

model Answer {
  text: String
}
`
	schema := resolveValid(t, input)

	answers := schema.Models["Survey"].FindField("answers")
	if answers.Relation.Kind != ir.RelationOwned {
		t.Errorf("Expected an owned composition, got %s", answers.Relation.Kind)
	}
	if !answers.Type.List || answers.Type.Kind != ir.TypeOwnedModel {
		t.Errorf("Expected an owned model array, got %s", answers.Type)
	}
}
