// Package solid contains icon definitions of the "fas" style.
package solid

import "github.com/johann/pinboard/internal/icons"

const prefix = "fas"

// Plus is the "plus" icon.
var Plus = icons.Definition{
	Prefix:  prefix,
	Name:    "plus",
	Width:   448,
	Height:  512,
	Aliases: []string{"add"},
	Unicode: "2b",
	Path:    "M256 80c0-17.7-14.3-32-32-32s-32 14.3-32 32V224H48c-17.7 0-32 14.3-32 32s14.3 32 32 32H192V432c0 17.7 14.3 32 32 32s32-14.3 32-32V288H400c17.7 0 32-14.3 32-32s-14.3-32-32-32H256V80z",
}

// Edit is the pencil-on-square icon.
var Edit = icons.Definition{
	Prefix:  prefix,
	Name:    "pen-to-square",
	Width:   512,
	Height:  512,
	Aliases: []string{"edit"},
	Unicode: "f044",
	Path:    "M471.6 21.7c-21.9-21.9-57.3-21.9-79.2 0L362.3 51.7l97.9 97.9 30.1-30.1c21.9-21.9 21.9-57.3 0-79.2L471.6 21.7zm-299.2 220c-6.1 6.1-10.8 13.6-13.5 21.9l-29.6 88.8c-2.9 8.6-.6 18.1 5.8 24.6s15.9 8.7 24.6 5.8l88.8-29.6c8.2-2.7 15.7-7.4 21.9-13.5L437.7 172.3 339.7 74.3 172.4 241.7zM96 64C43 64 0 107 0 160V416c0 53 43 96 96 96H352c53 0 96-43 96-96V320c0-17.7-14.3-32-32-32s-32 14.3-32 32v96c0 17.7-14.3 32-32 32H96c-17.7 0-32-14.3-32-32V160c0-17.7 14.3-32 32-32h96c17.7 0 32-14.3 32-32s-14.3-32-32-32H96z",
}

// Thumbtack is the pin icon.
var Thumbtack = icons.Definition{
	Prefix:  prefix,
	Name:    "thumbtack",
	Width:   384,
	Height:  512,
	Aliases: []string{"thumb-tack"},
	Unicode: "f08d",
	Path:    "M32 32C32 14.3 46.3 0 64 0H320c17.7 0 32 14.3 32 32s-14.3 32-32 32H290.5l11.4 148.2c36.7 19.9 65.7 53.2 79.5 94.7l1 3c3.3 9.8 1.6 20.5-4.4 28.8s-15.7 13.3-26 13.3H32c-10.3 0-19.9-4.9-26-13.3s-7.7-19.1-4.4-28.8l1-3c13.8-41.5 42.8-74.8 79.5-94.7L93.5 64H64C46.3 64 32 49.7 32 32zM160 384h64v96c0 17.7-14.3 32-32 32s-32-14.3-32-32V384z",
}

// All is every icon the application bootstraps with.
var All = []icons.Definition{Plus, Edit, Thumbtack}
