package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jigmesh/triangulate"
)

var triangulatePolyFlag string
var triangulateHolesFlag []string

var triangulateCmd = &cobra.Command{
	Use:   "triangulate",
	Short: "Triangulate a polygon and report the resulting face count",
	RunE: func(cmd *cobra.Command, args []string) error {
		outer, holes, err := parsePolygon(triangulatePolyFlag)
		if err != nil {
			return err
		}

		t := triangulate.New(outer)
		for _, h := range holes {
			t.AddHole(h)
		}
		for _, raw := range triangulateHolesFlag {
			hole, _, err := parsePolygon(raw)
			if err != nil {
				return err
			}
			t.AddHole(hole)
		}

		mesh, err := t.Go()
		if err != nil {
			return err
		}
		fmt.Printf("verts=%d faces=%d\n", mesh.VertCount(), mesh.FaceCount())
		return nil
	},
}

func init() {
	triangulateCmd.Flags().StringVar(&triangulatePolyFlag, "polygon", "", "(x y, x y, x y) outer ring")
	triangulateCmd.Flags().StringArrayVar(&triangulateHolesFlag, "hole", nil, "(x y, x y, x y) hole ring, repeatable")
	triangulateCmd.MarkFlagRequired("polygon")
	rootCmd.AddCommand(triangulateCmd)
}
