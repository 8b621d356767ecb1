package main

import (
	"fmt"

	"github.com/cellux/batterm"
)

type bat struct {
	name     string
	wingspan int // cm
}

func (b bat) GetUniqueId() any { return b.name }

func (b bat) Format() string {
	return fmt.Sprintf("%-28s %3d cm", b.name, b.wingspan)
}

var bats = []batterm.ListEntry{
	bat{"bumblebee bat", 17},
	bat{"common pipistrelle", 22},
	bat{"brown long-eared bat", 27},
	bat{"daubenton's bat", 27},
	bat{"lesser horseshoe bat", 25},
	bat{"greater horseshoe bat", 38},
	bat{"mexican free-tailed bat", 30},
	bat{"little brown bat", 25},
	bat{"big brown bat", 33},
	bat{"hoary bat", 40},
	bat{"common vampire bat", 18},
	bat{"egyptian fruit bat", 60},
	bat{"spectral bat", 90},
	bat{"large flying fox", 150},
	bat{"giant golden-crowned flying fox", 170},
}
