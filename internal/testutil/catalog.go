package testutil

// Play ids in SampleCatalogJSON that tests refer to by name.
const (
	PlayMeshPost    = "eagles-off-gun-bunch-mesh-post"
	PlayInsideZone  = "eagles-off-gun-bunch-inside-zone"
	PlayMeshSpot    = "eagles-off-gun-trips-te-mesh-spot"
	PlayPowerO      = "eagles-off-sb-ace-power"
	PlayCover3Sky   = "eagles-def-43-over-cover-3"
	PlayMeshBlitz   = "eagles-def-43-over-mesh-blitz"
	PlayAirRaidMesh = "air-raid-off-gun-empty-mesh"
)

// SampleCatalogJSON is a small, well-formed catalog document.
//
// Name matches for "mesh", in declaration order:
//
//	Mesh Post (eagles-off), Mesh Spot (eagles-off),
//	Mesh Blitz (eagles-def), MESH (air-raid-off)
//
// It holds 11 plays across three playbooks.
const SampleCatalogJSON = `{
  "playbooks": [
    {
      "id": "eagles-off",
      "name": "Eagles",
      "type": "offense",
      "category": "team",
      "formationGroups": [
        {
          "name": "Gun",
          "formations": [
            {
              "name": "Gun Bunch",
              "slug": "gun-bunch",
              "plays": [
                {"id": "eagles-off-gun-bunch-mesh-post", "name": "Mesh Post", "type": "pass"},
                {"id": "eagles-off-gun-bunch-inside-zone", "name": "Inside Zone", "type": "run"},
                {"id": "eagles-off-gun-bunch-bench", "name": "Bench", "type": "pass"}
              ]
            },
            {
              "name": "Gun Trips TE",
              "slug": "gun-trips-te",
              "plays": [
                {"id": "eagles-off-gun-trips-te-mesh-spot", "name": "Mesh Spot", "type": "pass"},
                {"id": "eagles-off-gun-trips-te-hb-draw", "name": "HB Draw", "type": "run"}
              ]
            }
          ]
        },
        {
          "name": "Singleback",
          "formations": [
            {
              "name": "Singleback Ace",
              "slug": "singleback-ace",
              "plays": [
                {"id": "eagles-off-sb-ace-pa-boot", "name": "PA Boot Over", "type": "pass"},
                {"id": "eagles-off-sb-ace-power", "name": "Power O", "type": "run"}
              ]
            }
          ]
        }
      ]
    },
    {
      "id": "eagles-def",
      "name": "Eagles",
      "type": "defense",
      "category": "team",
      "formationGroups": [
        {
          "name": "4-3",
          "formations": [
            {
              "name": "4-3 Over",
              "slug": "4-3-over",
              "plays": [
                {"id": "eagles-def-43-over-cover-3", "name": "Cover 3 Sky", "type": "zone"},
                {"id": "eagles-def-43-over-mesh-blitz", "name": "Mesh Blitz", "type": "blitz"}
              ]
            }
          ]
        }
      ]
    },
    {
      "id": "air-raid-off",
      "name": "Air Raid",
      "type": "offense",
      "category": "alternate",
      "formationGroups": [
        {
          "name": "Gun",
          "formations": [
            {
              "name": "Gun Empty",
              "slug": "gun-empty",
              "plays": [
                {"id": "air-raid-off-gun-empty-mesh", "name": "MESH", "type": "pass"},
                {"id": "air-raid-off-gun-empty-four-verts", "name": "Four Verts", "type": "pass"}
              ]
            }
          ]
        }
      ]
    }
  ]
}`
