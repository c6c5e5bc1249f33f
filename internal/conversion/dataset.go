package conversion

// The pairs below are keyed by the modern identifier; the value is the legacy
// identifier, or "" when the asset has no legacy counterpart.

var woodTypes = []string{"acacia", "birch", "dark_oak", "jungle", "oak", "spruce"}

var dyeColors = []string{
	"black", "blue", "brown", "cyan", "gray", "green", "light_blue", "lime",
	"magenta", "orange", "pink", "purple", "red", "light_gray", "white", "yellow",
}

// legacyDoorWood is the wood token used by legacy door textures.
func legacyDoorWood(wood string) string {
	if wood == "oak" {
		return "wood"
	}
	return wood
}

// legacyDoorModel is the wood token used by legacy door models.
func legacyDoorModel(wood string) string {
	if wood == "oak" {
		return "wooden"
	}
	return wood
}

// legacyTreeWood is the wood token used by legacy log, leaves and planks.
func legacyTreeWood(wood string) string {
	if wood == "dark_oak" {
		return "big_oak"
	}
	return wood
}

func legacySaplingWood(wood string) string {
	if wood == "dark_oak" {
		return "roofed_oak"
	}
	return wood
}

func legacyColor(color string) string {
	if color == "light_gray" {
		return "silver"
	}
	return color
}

func blockStatePairs() []pair {
	return []pair{
		{"powered_rail", "golden_rail"},
	}
}

func modelPairs() []pair {
	pairs := make([]pair, 0, 64)
	for _, wood := range woodTypes {
		door := legacyDoorModel(wood)
		pairs = append(pairs,
			pair{wood + "_door_top_hinge", door + "_door_top_rh"},
			pair{wood + "_door_bottom_hinge", door + "_door_bottom_rh"},
		)
		if wood != "oak" {
			pairs = append(pairs,
				pair{wood + "_trapdoor_bottom", ""},
				pair{wood + "_trapdoor_open", ""},
				pair{wood + "_trapdoor_top", ""},
			)
		}
	}
	return append(pairs,
		pair{"oak_trapdoor_bottom", "wooden_trapdoor_bottom"},
		pair{"oak_trapdoor_open", "wooden_trapdoor_open"},
		pair{"oak_trapdoor_top", "wooden_trapdoor_top"},
		pair{"oak_door_top", "wooden_door_top"},
		pair{"oak_door_bottom", "wooden_door_bottom"},
		pair{"iron_door_top_hinge", "iron_door_top_rh"},
		pair{"iron_door_bottom_hinge", "iron_door_bottom_rh"},
		pair{"powered_rail", "golden_rail_flat"},
		pair{"powered_rail_raised_ne", "golden_rail_raised_ne"},
		pair{"powered_rail_raised_sw", "golden_rail_raised_sw"},
		pair{"powered_rail_on", "golden_rail_active_flat"},
		pair{"powered_rail_on_raised_ne", "golden_rail_active_raised_ne"},
		pair{"powered_rail_on_raised_sw", "golden_rail_active_raised_sw"},
	)
}

func texturePairs() []pair {
	pairs := make([]pair, 0, 512)
	for _, wood := range woodTypes {
		door := legacyDoorWood(wood)
		tree := legacyTreeWood(wood)
		pairs = append(pairs,
			pair{wood + "_door", "door_" + door},
			pair{wood + "_door_top", "door_" + door + "_upper"},
			pair{wood + "_door_bottom", "door_" + door + "_lower"},
			pair{wood + "_leaves", "leaves_" + tree},
			pair{wood + "_log", "log_" + tree},
			pair{wood + "_log_top", "log_" + tree + "_top"},
			pair{wood + "_planks", "planks_" + tree},
			pair{"stripped_" + wood + "_log", ""},
			pair{"stripped_" + wood + "_log_top", ""},
			pair{wood + "_sapling", "sapling_" + legacySaplingWood(wood)},
		)
		if wood != "oak" {
			pairs = append(pairs, pair{wood + "_trapdoor", ""})
		}
	}
	for _, color := range dyeColors {
		legacy := legacyColor(color)
		pairs = append(pairs,
			pair{color + "_concrete", "concrete_" + legacy},
			pair{color + "_concrete_powder", "concrete_powder_" + legacy},
			pair{color + "_wool", "wool_colored_" + legacy},
			pair{color + "_stained_glass", "glass_" + legacy},
			pair{color + "_stained_glass_pane_top", "glass_pane_top_" + legacy},
			pair{color + "_shulker_box", "shulker_top_" + legacy},
			pair{color + "_terracotta", "hardened_clay_stained_" + legacy},
			pair{color + "_glazed_terracotta", "glazed_terracotta_" + legacy},
		)
	}
	pairs = append(pairs, blockTexturePairs...)
	return append(pairs, itemTexturePairs...)
}

var blockTexturePairs = []pair{
	{"oak_trapdoor", "trapdoor"},
	{"iron_door_top", "door_iron_upper"},
	{"iron_door_bottom", "door_iron_lower"},
	{"granite", "stone_granite"},
	{"polished_granite", "stone_granite_smooth"},
	{"diorite", "stone_diorite"},
	{"polished_diorite", "stone_diorite_smooth"},
	{"andesite", "stone_andesite"},
	{"polished_andesite", "stone_andesite_smooth"},
	{"grass", "tallgrass"},
	{"grass_block_side", "grass_side"},
	{"grass_block_snow", "grass_side_snowed"},
	{"grass_block_side_overlay", "grass_side_overlay"},
	{"grass_block_top", "grass_top"},
	{"podzol_side", "dirt_podzol_side"},
	{"podzol_top", "dirt_podzol_top"},
	{"tall_grass_top", "double_plant_grass_top"},
	{"tall_grass_bottom", "double_plant_grass_bottom"},
	{"cut_sandstone", "sandstone_smooth"},
	{"cut_red_sandstone", "red_sandstone_smooth"},
	{"chiseled_sandstone", "sandstone_carved"},
	{"chiseled_red_sandstone", "red_sandstone_carved"},
	{"terracotta", "hardened_clay"},
	{"furnace_front", "furnace_front_off"},
	{"sandstone", "sandstone_normal"},
	{"red_sandstone", "red_sandstone_normal"},
	{"nether_quartz_ore", "quartz_ore"},
	{"chiseled_quartz_block", "quartz_block_chiseled"},
	{"chiseled_quartz_block_top", "quartz_block_chiseled_top"},
	{"quartz_pillar", "quartz_block_lines"},
	{"quartz_pillar_top", "quartz_block_lines_top"},
	{"melon_stem", "melon_stem_disconnected"},
	{"attached_melon_stem", "melon_stem_connected"},
	{"pumpkin_stem", "pumpkin_stem_disconnected"},
	{"attached_pumpkin_stem", "pumpkin_stem_connected"},
	{"brown_mushroom", "mushroom_brown"},
	{"brown_mushroom_block", "mushroom_block_skin_brown"},
	{"red_mushroom", "mushroom_red"},
	{"red_mushroom_block", "mushroom_block_skin_red"},
	{"mushroom_stem", "mushroom_block_skin_stem"},
	{"activator_rail", "rail_activator"},
	{"activator_rail_on", "rail_activator_powered"},
	{"detector_rail", "rail_detector"},
	{"detector_rail_on", "rail_detector_powered"},
	{"powered_rail", "rail_golden"},
	{"powered_rail_on", "rail_golden_powered"},
	{"rail", "rail_normal"},
	{"rail_corner", "rail_normal_turned"},
	{"allium", "flower_allium"},
	{"blue_orchid", "flower_blue_orchid"},
	{"dandelion", "flower_dandelion"},
	{"azure_bluet", "flower_houstonia"},
	{"oxeye_daisy", "flower_oxeye_daisy"},
	{"poppy", "flower_rose"},
	{"orange_tulip", "flower_tulip_orange"},
	{"pink_tulip", "flower_tulip_pink"},
	{"red_tulip", "flower_tulip_red"},
	{"white_tulip", "flower_tulip_white"},
	{"cobweb", "web"},
	{"beetroots_stage0", "beetroots_stage_0"},
	{"beetroots_stage1", "beetroots_stage_1"},
	{"beetroots_stage2", "beetroots_stage_2"},
	{"beetroots_stage3", "beetroots_stage_3"},
	{"carrots_stage0", "carrots_stage_0"},
	{"carrots_stage1", "carrots_stage_1"},
	{"carrots_stage2", "carrots_stage_2"},
	{"carrots_stage3", "carrots_stage_3"},
	{"cocoa_stage0", "cocoa_stage_0"},
	{"cocoa_stage1", "cocoa_stage_1"},
	{"cocoa_stage2", "cocoa_stage_2"},
	{"nether_wart_stage0", "nether_wart_stage_0"},
	{"nether_wart_stage1", "nether_wart_stage_1"},
	{"nether_wart_stage2", "nether_wart_stage_2"},
	{"potatoes_stage0", "potatoes_stage_0"},
	{"potatoes_stage1", "potatoes_stage_1"},
	{"potatoes_stage2", "potatoes_stage_2"},
	{"potatoes_stage3", "potatoes_stage_3"},
	{"wheat_stage0", "wheat_stage_0"},
	{"wheat_stage1", "wheat_stage_1"},
	{"wheat_stage2", "wheat_stage_2"},
	{"wheat_stage3", "wheat_stage_3"},
	{"wheat_stage4", "wheat_stage_4"},
	{"wheat_stage5", "wheat_stage_5"},
	{"wheat_stage6", "wheat_stage_6"},
	{"wheat_stage7", "wheat_stage_7"},
	{"comparator", "comparator_off"},
	{"repeater", "repeater_off"},
	{"redstone_torch", "redstone_torch_on"},
	{"redstone_lamp", "redstone_lamp_off"},
	{"dispenser_front", "dispenser_front_horizontal"},
	{"dropper_front", "dropper_front_horizontal"},
	{"torch", "torch_on"},
	{"bricks", "brick"},
	{"chiseled_stone_bricks", "stonebrick_carved"},
	{"cracked_stone_bricks", "stonebrick_cracked"},
	{"end_stone_bricks", "end_bricks"},
	{"mossy_stone_bricks", "stonebrick_mossy"},
	{"nether_bricks", "nether_brick"},
	{"red_nether_bricks", "red_nether_brick"},
	{"stone_bricks", "stonebrick"},
	{"mossy_cobblestone", "cobblestone_mossy"},
	{"anvil", "anvil_base"},
	{"anvil_top", "anvil_top_damaged_0"},
	{"chipped_anvil_top", "anvil_top_damaged_1"},
	{"damaged_anvil_top", "anvil_top_damaged_2"},
	{"piston_top", "piston_top_normal"},
	{"lily_pad", "waterlily"},
	{"turtle_egg", ""},
}

var itemTexturePairs = []pair{
	{"ink_sac", "dye_powder_black"},
	{"lapis_lazuli", "dye_powder_blue"},
	{"cocoa_beans", "dye_powder_brown"},
	{"cyan_dye", "dye_powder_cyan"},
	{"gray_dye", "dye_powder_gray"},
	{"cactus_green", "dye_powder_green"},
	{"light_blue_dye", "dye_powder_light_blue"},
	{"lime_dye", "dye_powder_lime"},
	{"magenta_dye", "dye_powder_magenta"},
	{"orange_dye", "dye_powder_orange"},
	{"pink_dye", "dye_powder_pink"},
	{"purple_dye", "dye_powder_purple"},
	{"rose_red", "dye_powder_red"},
	{"light_gray_dye", "dye_powder_silver"},
	{"bone_meal", "dye_powder_white"},
	{"dandelion_yellow", "dye_powder_yellow"},
	{"bucket", "bucket_empty"},
	{"cod_bucket", ""},
	{"lava_bucket", "bucket_lava"},
	{"milk_bucket", "bucket_milk"},
	{"pufferfish_bucket", ""},
	{"salmon_bucket", ""},
	{"tropical_fish_bucket", ""},
	{"water_bucket", "bucket_water"},
	{"chest_minecart", "minecart_chest"},
	{"command_block_minecart", "minecart_command_block"},
	{"furnace_minecart", "minecart_furnace"},
	{"hopper_minecart", "minecart_hopper"},
	{"minecart", "minecart_normal"},
	{"tnt_minecart", "minecart_tnt"},
	{"beef", "beef_raw"},
	{"bow", "bow_standby"},
	{"cooked_beef", "beef_cooked"},
	{"chicken", "chicken_raw"},
	{"cooked_chicken", "chicken_cooked"},
	{"cod", "fish_cod_raw"},
	{"cooked_cod", "fish_cod_cooked"},
	{"mutton", "mutton_raw"},
	{"cooked_mutton", "mutton_cooked"},
	{"porkchop", "porkchop_raw"},
	{"cooked_porkchop", "porkchop_cooked"},
	{"rabbit", "rabbit_raw"},
	{"cooked_rabbit", "rabbit_cooked"},
	{"salmon", "fish_salmon_raw"},
	{"cooked_salmon", "fish_salmon_cooked"},
	{"tropical_fish", "fish_clownfish_raw"},
	{"pufferfish", "fish_pufferfish_raw"},
	{"fishing_rod", "fishing_rod_uncast"},
	{"book", "book_normal"},
	{"enchanted_book", "book_enchanted"},
	{"writable_book", "book_writable"},
	{"written_book", "book_written"},
	{"fermented_spider_eye", "spider_eye_fermented"},
	{"map", "map_empty"},
	{"slime_ball", "slimeball"},
	{"trident", ""},
	{"turtle_helmet", ""},
	{"melon_seeds", "seeds_melon"},
	{"pumpkin_seeds", "seeds_pumpkin"},
	{"wheat_seeds", "seeds_wheat"},
	{"sugar_cane", "reeds"},
	{"redstone", "redstone_dust"},
	{"armor_stand", "wooden_armorstand"},
	{"wooden_axe", "wood_axe"},
	{"wooden_hoe", "wood_hoe"},
	{"wooden_pickaxe", "wood_pickaxe"},
	{"wooden_shovel", "wood_shovel"},
	{"wooden_sword", "wood_sword"},
	{"golden_apple", "apple_golden"},
	{"golden_axe", "gold_axe"},
	{"golden_boots", "gold_boots"},
	{"golden_carrot", "carrot_golden"},
	{"golden_chestplate", "gold_chestplate"},
	{"golden_helmet", "gold_helmet"},
	{"golden_hoe", "gold_hoe"},
	{"golden_horse_armor", "gold_horse_armor"},
	{"golden_leggings", "gold_leggings"},
	{"golden_pickaxe", "gold_pickaxe"},
	{"golden_shovel", "gold_shovel"},
	{"golden_sword", "gold_sword"},
	{"music_disc_13", "record_13"},
	{"music_disc_cat", "record_cat"},
	{"music_disc_blocks", "record_blocks"},
	{"music_disc_chirp", "record_chirp"},
	{"music_disc_far", "record_far"},
	{"music_disc_mall", "record_mall"},
	{"music_disc_mellohi", "record_mellohi"},
	{"music_disc_stal", "record_stal"},
	{"music_disc_strad", "record_strad"},
	{"music_disc_ward", "record_ward"},
	{"music_disc_11", "record_11"},
	{"music_disc_wait", "record_wait"},
}
