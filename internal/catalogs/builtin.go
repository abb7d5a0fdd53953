package catalogs

// builtinDefs mirrors configs/blocks.json.
var builtinDefs = []BlockDef{
	{ID: "minecraft:air"},
	{ID: "minecraft:stone", Solid: true},
	{ID: "minecraft:cobblestone", Solid: true},
	{ID: "minecraft:dirt", Solid: true},
	{ID: "minecraft:grass_block", Solid: true},
	{ID: "minecraft:sand", Solid: true},
	{ID: "minecraft:gravel", Solid: true},
	{ID: "minecraft:oak_log", Solid: true},
	{ID: "minecraft:oak_planks", Solid: true},
	{ID: "minecraft:oak_stairs", Solid: true},
	{ID: "minecraft:oak_slab", Solid: true},
	{ID: "minecraft:glass", Solid: true},
	{ID: "minecraft:glowstone", Solid: true},
	{ID: "minecraft:obsidian", Solid: true},
	{ID: "minecraft:bricks", Solid: true},
	{ID: "minecraft:stone_bricks", Solid: true},
	{ID: "minecraft:sandstone", Solid: true},
	{ID: "minecraft:quartz_block", Solid: true},
	{ID: "minecraft:iron_block", Solid: true},
	{ID: "minecraft:gold_block", Solid: true},
	{ID: "minecraft:diamond_block", Solid: true},
	{ID: "minecraft:water"},
	{ID: "minecraft:lava"},
	{ID: "minecraft:torch"},
	{ID: "minecraft:ladder"},
	{ID: "minecraft:white_wool", Solid: true},
	{ID: "minecraft:black_wool", Solid: true},
	{ID: "minecraft:red_wool", Solid: true},
	{ID: "minecraft:blue_wool", Solid: true},
	{ID: "minecraft:green_wool", Solid: true},
}
