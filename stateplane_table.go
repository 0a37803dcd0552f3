/*
Copyright © 2019 the GCTP authors.
This file is part of GCTP.

GCTP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GCTP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GCTP.  If not, see <http://www.gnu.org/licenses/>.
*/

package gctp

// Zone rows hold nine values whose meaning depends on the kind:
//
//	TM:        major, e², central meridian, scale, -, -, origin lat, FE, FN
//	LCC:       major, e², central meridian, -, lat2, lat1, origin lat, FE, FN
//	Polyconic: major, e², central meridian, origin lat, FE, FN
//	HOM:       major, e², center lon, scale, -, azimuth, origin lat, FE, FN
//
// Angles are packed DDDMMSS.SSS and distances are meters.

// nad27Zones are the State Plane zones on the Clarke 1866 spheroid.
// Rows of zones that only exist on NAD83 are invalid.
var nad27Zones = []StatePlaneZone{
	{101, spTM, [9]float64{6378206.4, 0.00676865799729, -855000, 0.99996, 0, 0, 303000, 152400.3048006096, 0}, "ALABAMA EAST"},
	{102, spTM, [9]float64{6378206.4, 0.00676865799729, -873000, 0.999933333, 0, 0, 300000, 152400.3048006096, 0}, "ALABAMA WEST"},
	{201, spTM, [9]float64{6378206.4, 0.00676865799729, -1101000, 0.9999, 0, 0, 310000, 152400.3048006096, 0}, "ARIZONA EAST"},
	{202, spTM, [9]float64{6378206.4, 0.00676865799729, -1115500, 0.9999, 0, 0, 310000, 152400.3048006096, 0}, "ARIZONA CENTRAL"},
	{203, spTM, [9]float64{6378206.4, 0.00676865799729, -1134500, 0.999933333, 0, 0, 310000, 152400.3048006096, 0}, "ARIZONA WEST"},
	{301, spLCC, [9]float64{6378206.4, 0.00676865799729, -920000, 0, 361400, 345600, 342000, 609601.2192024384, 0}, "ARKANSAS NORTH"},
	{302, spLCC, [9]float64{6378206.4, 0.00676865799729, -920000, 0, 344600, 331800, 324000, 609601.2192024384, 0}, "ARKANSAS SOUTH"},
	{401, spLCC, [9]float64{6378206.4, 0.00676865799729, -1220000, 0, 414000, 400000, 392000, 609601.2192024384, 0}, "CALIFORNIA I"},
	{402, spLCC, [9]float64{6378206.4, 0.00676865799729, -1220000, 0, 395000, 382000, 374000, 609601.2192024384, 0}, "CALIFORNIA II"},
	{403, spLCC, [9]float64{6378206.4, 0.00676865799729, -1203000, 0, 382600, 370400, 363000, 609601.2192024384, 0}, "CALIFORNIA III"},
	{404, spLCC, [9]float64{6378206.4, 0.00676865799729, -1190000, 0, 371500, 360000, 352000, 609601.2192024384, 0}, "CALIFORNIA IV"},
	{405, spLCC, [9]float64{6378206.4, 0.00676865799729, -1180000, 0, 352800, 340200, 333000, 609601.2192024384, 0}, "CALIFORNIA V"},
	{406, spLCC, [9]float64{6378206.4, 0.00676865799729, -1161500, 0, 335300, 324700, 321000, 609601.2192024384, 0}, "CALIFORNIA VI"},
	{407, spLCC, [9]float64{6378206.4, 0.00676865799729, -1182000, 0, 342500, 335200, 340800, 1276106.4505969011, 1268253.0068580138}, "CALIFORNIA VII"},
	{501, spLCC, [9]float64{6378206.4, 0.00676865799729, -1053000, 0, 404700, 394300, 392000, 609601.2192024384, 0}, "COLORADO NORTH"},
	{502, spLCC, [9]float64{6378206.4, 0.00676865799729, -1053000, 0, 394500, 382700, 375000, 609601.2192024384, 0}, "COLORADO CENTRAL"},
	{503, spLCC, [9]float64{6378206.4, 0.00676865799729, -1053000, 0, 382600, 371400, 364000, 609601.2192024384, 0}, "COLORADO SOUTH"},
	{600, spLCC, [9]float64{6378206.4, 0.00676865799729, -724500, 0, 415200, 411200, 405000, 182880.3657607315, 0}, "CONNECTICUT"},
	{700, spTM, [9]float64{6378206.4, 0.00676865799729, -752500, 0.999995, 0, 0, 380000, 152400.3048006096, 0}, "DELAWARE"},
	{901, spTM, [9]float64{6378206.4, 0.00676865799729, -810000, 0.999941176, 0, 0, 242000, 152400.3048006096, 0}, "FLORIDA EAST"},
	{902, spTM, [9]float64{6378206.4, 0.00676865799729, -820000, 0.999941176, 0, 0, 242000, 152400.3048006096, 0}, "FLORIDA WEST"},
	{903, spLCC, [9]float64{6378206.4, 0.00676865799729, -843000, 0, 304500, 293500, 290000, 609601.2192024384, 0}, "FLORIDA NORTH"},
	{1001, spTM, [9]float64{6378206.4, 0.00676865799729, -821000, 0.9999, 0, 0, 300000, 152400.3048006096, 0}, "GEORGIA EAST"},
	{1002, spTM, [9]float64{6378206.4, 0.00676865799729, -841000, 0.9999, 0, 0, 300000, 152400.3048006096, 0}, "GEORGIA WEST"},
	{1101, spTM, [9]float64{6378206.4, 0.00676865799729, -1121000, 0.999947368, 0, 0, 414000, 152400.3048006096, 0}, "IDAHO EAST"},
	{1102, spTM, [9]float64{6378206.4, 0.00676865799729, -1140000, 0.999947368, 0, 0, 414000, 152400.3048006096, 0}, "IDAHO CENTRAL"},
	{1103, spTM, [9]float64{6378206.4, 0.00676865799729, -1154500, 0.999933333, 0, 0, 414000, 152400.3048006096, 0}, "IDAHO WEST"},
	{1201, spTM, [9]float64{6378206.4, 0.00676865799729, -882000, 0.999975, 0, 0, 364000, 152400.3048006096, 0}, "ILLINOIS EAST"},
	{1202, spTM, [9]float64{6378206.4, 0.00676865799729, -901000, 0.999941176, 0, 0, 364000, 152400.3048006096, 0}, "ILLINOIS WEST"},
	{1301, spTM, [9]float64{6378206.4, 0.00676865799729, -854000, 0.999966667, 0, 0, 373000, 152400.3048006096, 0}, "INDIANA EAST"},
	{1302, spTM, [9]float64{6378206.4, 0.00676865799729, -870500, 0.999966667, 0, 0, 373000, 152400.3048006096, 0}, "INDIANA WEST"},
	{1401, spLCC, [9]float64{6378206.4, 0.00676865799729, -933000, 0, 431600, 420400, 413000, 609601.2192024384, 0}, "IOWA NORTH"},
	{1402, spLCC, [9]float64{6378206.4, 0.00676865799729, -933000, 0, 414700, 403700, 400000, 609601.2192024384, 0}, "IOWA SOUTH"},
	{1501, spLCC, [9]float64{6378206.4, 0.00676865799729, -980000, 0, 394700, 384300, 382000, 609601.2192024384, 0}, "KANSAS NORTH"},
	{1502, spLCC, [9]float64{6378206.4, 0.00676865799729, -983000, 0, 383400, 371600, 364000, 609601.2192024384, 0}, "KANSAS SOUTH"},
	{1601, spLCC, [9]float64{6378206.4, 0.00676865799729, -841500, 0, 385800, 375800, 373000, 609601.2192024384, 0}, "KENTUCKY NORTH"},
	{1602, spLCC, [9]float64{6378206.4, 0.00676865799729, -854500, 0, 375600, 364400, 362000, 609601.2192024384, 0}, "KENTUCKY SOUTH"},
	{1701, spLCC, [9]float64{6378206.4, 0.00676865799729, -923000, 0, 324000, 311000, 304000, 609601.2192024384, 0}, "LOUISIANA NORTH"},
	{1702, spLCC, [9]float64{6378206.4, 0.00676865799729, -912000, 0, 304200, 291800, 284000, 609601.2192024384, 0}, "LOUISIANA SOUTH"},
	{1703, spLCC, [9]float64{6378206.4, 0.00676865799729, -912000, 0, 275000, 261000, 254000, 609601.2192024384, 0}, "LOUISIANA OFFSHORE"},
	{1801, spTM, [9]float64{6378206.4, 0.00676865799729, -683000, 0.9999, 0, 0, 435000, 152400.3048006096, 0}, "MAINE EAST"},
	{1802, spTM, [9]float64{6378206.4, 0.00676865799729, -701000, 0.999966667, 0, 0, 425000, 152400.3048006096, 0}, "MAINE WEST"},
	{1900, spLCC, [9]float64{6378206.4, 0.00676865799729, -770000, 0, 392700, 381800, 375000, 243840.4876809753, 0}, "MARYLAND"},
	{2001, spLCC, [9]float64{6378206.4, 0.00676865799729, -713000, 0, 424100, 414300, 410000, 182880.3657607315, 0}, "MASSACHUSETTS MAINLAND"},
	{2002, spLCC, [9]float64{6378206.4, 0.00676865799729, -703000, 0, 412900, 411700, 410000, 60960.1219202438, 0}, "MASSACHUSETTS ISLAND"},
	{2101, spTM, [9]float64{6378206.4, 0.00676865799729, -834000, 0.999942857, 0, 0, 413000, 152400.3048006096, 0}, "MICHIGAN EAST"},
	{2102, spTM, [9]float64{6378206.4, 0.00676865799729, -854500, 0.999909091, 0, 0, 413000, 152400.3048006096, 0}, "MICHIGAN CENTRAL/M"},
	{2103, spTM, [9]float64{6378206.4, 0.00676865799729, -884500, 0.999909091, 0, 0, 413000, 152400.3048006096, 0}, "MICHIGAN WEST"},
	{2111, spLCC, [9]float64{6378206.4, 0.00676865799729, -870000, 0, 470500, 452900, 444700, 609601.2192024384, 0}, "MICHIGAN NORTH"},
	{2112, spLCC, [9]float64{6378206.4, 0.00676865799729, -842000, 0, 454200, 441100, 431900, 609601.2192024384, 0}, "MICHIGAN CENTRAL/L"},
	{2113, spLCC, [9]float64{6378206.4, 0.00676865799729, -842000, 0, 434000, 420600, 413000, 609601.2192024384, 0}, "MICHIGAN SOUTH"},
	{2201, spLCC, [9]float64{6378206.4, 0.00676865799729, -930600, 0, 483800, 470200, 463000, 609601.2192024384, 0}, "MINNESOTA NORTH"},
	{2202, spLCC, [9]float64{6378206.4, 0.00676865799729, -941500, 0, 470300, 453700, 450000, 609601.2192024384, 0}, "MINNESOTA CENTRAL"},
	{2203, spLCC, [9]float64{6378206.4, 0.00676865799729, -940000, 0, 451300, 434700, 430000, 609601.2192024384, 0}, "MINNESOTA SOUTH"},
	{2301, spTM, [9]float64{6378206.4, 0.00676865799729, -885000, 0.99996, 0, 0, 294000, 152400.3048006096, 0}, "MISSISSIPPI EAST"},
	{2302, spTM, [9]float64{6378206.4, 0.00676865799729, -902000, 0.999941176, 0, 0, 303000, 152400.3048006096, 0}, "MISSISSIPPI WEST"},
	{2401, spTM, [9]float64{6378206.4, 0.00676865799729, -903000, 0.999933333, 0, 0, 355000, 152400.3048006096, 0}, "MISSOURI EAST"},
	{2402, spTM, [9]float64{6378206.4, 0.00676865799729, -923000, 0.999933333, 0, 0, 355000, 152400.3048006096, 0}, "MISSOURI CENTRAL"},
	{2403, spTM, [9]float64{6378206.4, 0.00676865799729, -943000, 0.999941176, 0, 0, 361000, 152400.3048006096, 0}, "MISSOURI WEST"},
	{2500, spInvalid, [9]float64{}, "MONTANA"},
	{2501, spLCC, [9]float64{6378206.4, 0.00676865799729, -1093000, 0, 484300, 475100, 470000, 609601.2192024384, 0}, "MONTANA NORTH"},
	{2502, spLCC, [9]float64{6378206.4, 0.00676865799729, -1093000, 0, 475300, 462700, 455000, 609601.2192024384, 0}, "MONTANA CENTRAL"},
	{2503, spLCC, [9]float64{6378206.4, 0.00676865799729, -1093000, 0, 462400, 445200, 440000, 609601.2192024384, 0}, "MONTANA SOUTH"},
	{2600, spInvalid, [9]float64{}, "NEBRASKA"},
	{2601, spLCC, [9]float64{6378206.4, 0.00676865799729, -1000000, 0, 424900, 415100, 412000, 609601.2192024384, 0}, "NEBRASKA NORTH"},
	{2602, spLCC, [9]float64{6378206.4, 0.00676865799729, -993000, 0, 414300, 401700, 394000, 609601.2192024384, 0}, "NEBRASKA SOUTH"},
	{2701, spTM, [9]float64{6378206.4, 0.00676865799729, -1153500, 0.9999, 0, 0, 344500, 152400.3048006096, 0}, "NEVADA EAST"},
	{2702, spTM, [9]float64{6378206.4, 0.00676865799729, -1164000, 0.9999, 0, 0, 344500, 152400.3048006096, 0}, "NEVADA CENTRAL"},
	{2703, spTM, [9]float64{6378206.4, 0.00676865799729, -1183500, 0.9999, 0, 0, 344500, 152400.3048006096, 0}, "NEVADA WEST"},
	{2800, spTM, [9]float64{6378206.4, 0.00676865799729, -714000, 0.999966667, 0, 0, 423000, 152400.3048006096, 0}, "NEW HAMPSHIRE"},
	{2900, spTM, [9]float64{6378206.4, 0.00676865799729, -744000, 0.999975, 0, 0, 385000, 609601.2192024384, 0}, "NEW JERSEY"},
	{3001, spTM, [9]float64{6378206.4, 0.00676865799729, -1042000, 0.999909091, 0, 0, 310000, 152400.3048006096, 0}, "NEW MEXICO EAST"},
	{3002, spTM, [9]float64{6378206.4, 0.00676865799729, -1061500, 0.9999, 0, 0, 310000, 152400.3048006096, 0}, "NEW MEXICO CENTRAL"},
	{3003, spTM, [9]float64{6378206.4, 0.00676865799729, -1075000, 0.999916667, 0, 0, 310000, 152400.3048006096, 0}, "NEW MEXICO WEST"},
	{3101, spTM, [9]float64{6378206.4, 0.00676865799729, -742000, 0.999966667, 0, 0, 400000, 152400.3048006096, 0}, "NEW YORK EAST"},
	{3102, spTM, [9]float64{6378206.4, 0.00676865799729, -763500, 0.9999375, 0, 0, 400000, 152400.3048006096, 0}, "NEW YORK CENTRAL"},
	{3103, spTM, [9]float64{6378206.4, 0.00676865799729, -783500, 0.9999375, 0, 0, 400000, 152400.3048006096, 0}, "NEW YORK WEST"},
	{3104, spLCC, [9]float64{6378206.4, 0.00676865799729, -740000, 0, 410200, 404000, 403000, 609601.2192024384, 30480.0609601219}, "NEW YORK LONG ISLAND"},
	{3200, spLCC, [9]float64{6378206.4, 0.00676865799729, -790000, 0, 361000, 342000, 334500, 609601.2192024384, 0}, "NORTH CAROLINA"},
	{3301, spLCC, [9]float64{6378206.4, 0.00676865799729, -1003000, 0, 484400, 472600, 470000, 609601.2192024384, 0}, "NORTH DAKOTA NORTH"},
	{3302, spLCC, [9]float64{6378206.4, 0.00676865799729, -1003000, 0, 472900, 461100, 454000, 609601.2192024384, 0}, "NORTH DAKOTA SOUTH"},
	{3401, spLCC, [9]float64{6378206.4, 0.00676865799729, -823000, 0, 414200, 402600, 394000, 609601.2192024384, 0}, "OHIO NORTH"},
	{3402, spLCC, [9]float64{6378206.4, 0.00676865799729, -823000, 0, 400200, 384400, 380000, 609601.2192024384, 0}, "OHIO SOUTH"},
	{3501, spLCC, [9]float64{6378206.4, 0.00676865799729, -980000, 0, 364600, 353400, 350000, 609601.2192024384, 0}, "OKLAHOMA NORTH"},
	{3502, spLCC, [9]float64{6378206.4, 0.00676865799729, -980000, 0, 351400, 335600, 332000, 609601.2192024384, 0}, "OKLAHOMA SOUTH"},
	{3601, spLCC, [9]float64{6378206.4, 0.00676865799729, -1203000, 0, 460000, 442000, 434000, 609601.2192024384, 0}, "OREGON NORTH"},
	{3602, spLCC, [9]float64{6378206.4, 0.00676865799729, -1203000, 0, 440000, 422000, 414000, 609601.2192024384, 0}, "OREGON SOUTH"},
	{3701, spLCC, [9]float64{6378206.4, 0.00676865799729, -774500, 0, 415700, 405300, 401000, 609601.2192024384, 0}, "PENNSYLVANIA NORTH"},
	{3702, spLCC, [9]float64{6378206.4, 0.00676865799729, -774500, 0, 405800, 395600, 392000, 609601.2192024384, 0}, "PENNSYLVANIA SOUTH"},
	{3800, spTM, [9]float64{6378206.4, 0.00676865799729, -713000, 0.99999375, 0, 0, 410500, 152400.3048006096, 0}, "RHODE ISLAND"},
	{3900, spInvalid, [9]float64{}, "SOUTH CAROLINA"},
	{3901, spLCC, [9]float64{6378206.4, 0.00676865799729, -810000, 0, 345800, 334600, 330000, 609601.2192024384, 0}, "SOUTH CAROLINA NORTH"},
	{3902, spLCC, [9]float64{6378206.4, 0.00676865799729, -810000, 0, 334000, 322000, 315000, 609601.2192024384, 0}, "SOUTH CAROLINA SOUTH"},
	{4001, spLCC, [9]float64{6378206.4, 0.00676865799729, -1000000, 0, 454100, 442500, 435000, 609601.2192024384, 0}, "SOUTH DAKOTA NORTH"},
	{4002, spLCC, [9]float64{6378206.4, 0.00676865799729, -1002000, 0, 442400, 425000, 422000, 609601.2192024384, 0}, "SOUTH DAKOTA SOUTH"},
	{4100, spLCC, [9]float64{6378206.4, 0.00676865799729, -860000, 0, 362500, 351500, 344000, 609601.2192024384, 30480.0609601219}, "TENNESSEE"},
	{4201, spLCC, [9]float64{6378206.4, 0.00676865799729, -1013000, 0, 361100, 343900, 340000, 609601.2192024384, 0}, "TEXAS NORTH"},
	{4202, spLCC, [9]float64{6378206.4, 0.00676865799729, -973000, 0, 335800, 320800, 314000, 609601.2192024384, 0}, "TEXAS NORTH CENTRAL"},
	{4203, spLCC, [9]float64{6378206.4, 0.00676865799729, -1002000, 0, 315300, 300700, 294000, 609601.2192024384, 0}, "TEXAS CENTRAL"},
	{4204, spLCC, [9]float64{6378206.4, 0.00676865799729, -990000, 0, 301700, 282300, 275000, 609601.2192024384, 0}, "TEXAS SOUTH CENTRAL"},
	{4205, spLCC, [9]float64{6378206.4, 0.00676865799729, -983000, 0, 275000, 261000, 254000, 609601.2192024384, 0}, "TEXAS SOUTH"},
	{4301, spLCC, [9]float64{6378206.4, 0.00676865799729, -1113000, 0, 414700, 404300, 402000, 609601.2192024384, 0}, "UTAH NORTH"},
	{4302, spLCC, [9]float64{6378206.4, 0.00676865799729, -1113000, 0, 403900, 390100, 382000, 609601.2192024384, 0}, "UTAH CENTRAL"},
	{4303, spLCC, [9]float64{6378206.4, 0.00676865799729, -1113000, 0, 382100, 371300, 364000, 609601.2192024384, 0}, "UTAH SOUTH"},
	{4400, spTM, [9]float64{6378206.4, 0.00676865799729, -723000, 0.999964286, 0, 0, 423000, 152400.3048006096, 0}, "VERMONT"},
	{4501, spLCC, [9]float64{6378206.4, 0.00676865799729, -783000, 0, 391200, 380200, 374000, 609601.2192024384, 0}, "VIRGINIA NORTH"},
	{4502, spLCC, [9]float64{6378206.4, 0.00676865799729, -783000, 0, 375800, 364600, 362000, 609601.2192024384, 0}, "VIRGINIA SOUTH"},
	{4601, spLCC, [9]float64{6378206.4, 0.00676865799729, -1205000, 0, 484400, 473000, 470000, 609601.2192024384, 0}, "WASHINGTON NORTH"},
	{4602, spLCC, [9]float64{6378206.4, 0.00676865799729, -1203000, 0, 472000, 455000, 452000, 609601.2192024384, 0}, "WASHINGTON SOUTH"},
	{4701, spLCC, [9]float64{6378206.4, 0.00676865799729, -793000, 0, 401500, 390000, 383000, 609601.2192024384, 0}, "WEST VIRGINIA NORTH"},
	{4702, spLCC, [9]float64{6378206.4, 0.00676865799729, -810000, 0, 385300, 372900, 370000, 609601.2192024384, 0}, "WEST VIRGINIA SOUTH"},
	{4801, spLCC, [9]float64{6378206.4, 0.00676865799729, -900000, 0, 464600, 453400, 451000, 609601.2192024384, 0}, "WISCONSIN NORTH"},
	{4802, spLCC, [9]float64{6378206.4, 0.00676865799729, -900000, 0, 453000, 441500, 435000, 609601.2192024384, 0}, "WISCONSIN CENTRAL"},
	{4803, spLCC, [9]float64{6378206.4, 0.00676865799729, -900000, 0, 440400, 424400, 420000, 609601.2192024384, 0}, "WISCONSIN SOUTH"},
	{4901, spTM, [9]float64{6378206.4, 0.00676865799729, -1051000, 0.999941176, 0, 0, 404000, 152400.3048006096, 0}, "WYOMING EAST"},
	{4902, spTM, [9]float64{6378206.4, 0.00676865799729, -1072000, 0.999941176, 0, 0, 404000, 152400.3048006096, 0}, "WYOMING EAST CENTRAL"},
	{4903, spTM, [9]float64{6378206.4, 0.00676865799729, -1084500, 0.999941176, 0, 0, 404000, 152400.3048006096, 0}, "WYOMING WEST CENTRAL"},
	{4904, spTM, [9]float64{6378206.4, 0.00676865799729, -1100500, 0.999941176, 0, 0, 404000, 152400.3048006096, 0}, "WYOMING WEST"},
	{5001, spHOM, [9]float64{6378206.4, 0.00676865799729, -1334000, 0.9999, 0, -365211.6315, 570000, 1524003.048006096, -1524003.048006096}, "ALASKA ZONE NO. 1"},
	{5002, spTM, [9]float64{6378206.4, 0.00676865799729, -1420000, 0.9999, 0, 0, 540000, 152400.3048006096, 0}, "ALASKA ZONE NO. 2"},
	{5003, spTM, [9]float64{6378206.4, 0.00676865799729, -1460000, 0.9999, 0, 0, 540000, 152400.3048006096, 0}, "ALASKA ZONE NO. 3"},
	{5004, spTM, [9]float64{6378206.4, 0.00676865799729, -1500000, 0.9999, 0, 0, 540000, 152400.3048006096, 0}, "ALASKA ZONE NO. 4"},
	{5005, spTM, [9]float64{6378206.4, 0.00676865799729, -1540000, 0.9999, 0, 0, 540000, 152400.3048006096, 0}, "ALASKA ZONE NO. 5"},
	{5006, spTM, [9]float64{6378206.4, 0.00676865799729, -1580000, 0.9999, 0, 0, 540000, 152400.3048006096, 0}, "ALASKA ZONE NO. 6"},
	{5007, spTM, [9]float64{6378206.4, 0.00676865799729, -1620000, 0.9999, 0, 0, 540000, 152400.3048006096, 0}, "ALASKA ZONE NO. 7"},
	{5008, spTM, [9]float64{6378206.4, 0.00676865799729, -1660000, 0.9999, 0, 0, 540000, 152400.3048006096, 0}, "ALASKA ZONE NO. 8"},
	{5009, spTM, [9]float64{6378206.4, 0.00676865799729, -1700000, 0.9999, 0, 0, 540000, 152400.3048006096, 0}, "ALASKA ZONE NO. 9"},
	{5010, spLCC, [9]float64{6378206.4, 0.00676865799729, -1760000, 0, 535000, 515000, 510000, 914401.8288036576, 0}, "ALASKA ZONE NO. 10"},
	{5101, spTM, [9]float64{6378206.4, 0.00676865799729, -1553000, 0.999966667, 0, 0, 185000, 152400.3048006096, 0}, "HAWAII 1"},
	{5102, spTM, [9]float64{6378206.4, 0.00676865799729, -1564000, 0.999966667, 0, 0, 202000, 152400.3048006096, 0}, "HAWAII 2"},
	{5103, spTM, [9]float64{6378206.4, 0.00676865799729, -1580000, 0.99999, 0, 0, 211000, 152400.3048006096, 0}, "HAWAII 3"},
	{5104, spTM, [9]float64{6378206.4, 0.00676865799729, -1593000, 0.99999, 0, 0, 215000, 152400.3048006096, 0}, "HAWAII 4"},
	{5105, spTM, [9]float64{6378206.4, 0.00676865799729, -1601000, 1, 0, 0, 214000, 152400.3048006096, 0}, "HAWAII 5"},
	{5200, spInvalid, [9]float64{}, "PUERTO RICO & VIRGIN ISLANDS"},
	{5201, spLCC, [9]float64{6378206.4, 0.00676865799729, -662600, 0, 182600, 180200, 175000, 152400.3048006096, 0}, "PUERTO RICO"},
	{5202, spLCC, [9]float64{6378206.4, 0.00676865799729, -662600, 0, 182600, 180200, 175000, 152400.3048006096, 30480.0609601219}, "VIRGIN ISLANDS"},
	{5300, spLCC, [9]float64{6378206.4, 0.00676865799729, -1700000, 0, -141600, -141600, -141600, 152400.3048006096, 95169.3116586233}, "AMERICAN SAMOA"},
	{5400, spPolyconic, [9]float64{6378206.4, 0.00676865799729, 1444455.50254, 132820.87887, 50000, 50000, 0, 0, 0}, "GUAM ISLAND"},
}

// nad83Zones are the State Plane zones on the GRS 1980 spheroid. Rows of
// zones that only exist on NAD27 are invalid.
var nad83Zones = []StatePlaneZone{
	{101, spTM, [9]float64{6378137, 0.0066943800229, -855000, 0.99996, 0, 0, 303000, 200000, 0}, "ALABAMA EAST"},
	{102, spTM, [9]float64{6378137, 0.0066943800229, -873000, 0.999933333, 0, 0, 300000, 600000, 0}, "ALABAMA WEST"},
	{201, spTM, [9]float64{6378137, 0.0066943800229, -1101000, 0.9999, 0, 0, 310000, 213360, 0}, "ARIZONA EAST"},
	{202, spTM, [9]float64{6378137, 0.0066943800229, -1115500, 0.9999, 0, 0, 310000, 213360, 0}, "ARIZONA CENTRAL"},
	{203, spTM, [9]float64{6378137, 0.0066943800229, -1134500, 0.999933333, 0, 0, 310000, 213360, 0}, "ARIZONA WEST"},
	{301, spLCC, [9]float64{6378137, 0.0066943800229, -920000, 0, 361400, 345600, 342000, 400000, 0}, "ARKANSAS NORTH"},
	{302, spLCC, [9]float64{6378137, 0.0066943800229, -920000, 0, 344600, 331800, 324000, 400000, 400000}, "ARKANSAS SOUTH"},
	{401, spLCC, [9]float64{6378137, 0.0066943800229, -1220000, 0, 414000, 400000, 392000, 2000000, 500000}, "CALIFORNIA I"},
	{402, spLCC, [9]float64{6378137, 0.0066943800229, -1220000, 0, 395000, 382000, 374000, 2000000, 500000}, "CALIFORNIA II"},
	{403, spLCC, [9]float64{6378137, 0.0066943800229, -1203000, 0, 382600, 370400, 363000, 2000000, 500000}, "CALIFORNIA III"},
	{404, spLCC, [9]float64{6378137, 0.0066943800229, -1190000, 0, 371500, 360000, 352000, 2000000, 500000}, "CALIFORNIA IV"},
	{405, spLCC, [9]float64{6378137, 0.0066943800229, -1180000, 0, 352800, 340200, 333000, 2000000, 500000}, "CALIFORNIA V"},
	{406, spLCC, [9]float64{6378137, 0.0066943800229, -1161500, 0, 335300, 324700, 321000, 2000000, 500000}, "CALIFORNIA VI"},
	{407, spInvalid, [9]float64{}, "CALIFORNIA VII"},
	{501, spLCC, [9]float64{6378137, 0.0066943800229, -1053000, 0, 404700, 394300, 392000, 914401.8289, 304800.6096}, "COLORADO NORTH"},
	{502, spLCC, [9]float64{6378137, 0.0066943800229, -1053000, 0, 394500, 382700, 375000, 914401.8289, 304800.6096}, "COLORADO CENTRAL"},
	{503, spLCC, [9]float64{6378137, 0.0066943800229, -1053000, 0, 382600, 371400, 364000, 914401.8289, 304800.6096}, "COLORADO SOUTH"},
	{600, spLCC, [9]float64{6378137, 0.0066943800229, -724500, 0, 415200, 411200, 405000, 304800.6096, 152400.3048}, "CONNECTICUT"},
	{700, spTM, [9]float64{6378137, 0.0066943800229, -752500, 0.999995, 0, 0, 380000, 200000, 0}, "DELAWARE"},
	{901, spTM, [9]float64{6378137, 0.0066943800229, -810000, 0.999941177, 0, 0, 242000, 200000, 0}, "FLORIDA EAST"},
	{902, spTM, [9]float64{6378137, 0.0066943800229, -820000, 0.999941177, 0, 0, 242000, 200000, 0}, "FLORIDA WEST"},
	{903, spLCC, [9]float64{6378137, 0.0066943800229, -843000, 0, 304500, 293500, 290000, 600000, 0}, "FLORIDA NORTH"},
	{1001, spTM, [9]float64{6378137, 0.0066943800229, -821000, 0.9999, 0, 0, 300000, 200000, 0}, "GEORGIA EAST"},
	{1002, spTM, [9]float64{6378137, 0.0066943800229, -841000, 0.9999, 0, 0, 300000, 700000, 0}, "GEORGIA WEST"},
	{1101, spTM, [9]float64{6378137, 0.0066943800229, -1121000, 0.999947368, 0, 0, 414000, 200000, 0}, "IDAHO EAST"},
	{1102, spTM, [9]float64{6378137, 0.0066943800229, -1140000, 0.999947368, 0, 0, 414000, 500000, 0}, "IDAHO CENTRAL"},
	{1103, spTM, [9]float64{6378137, 0.0066943800229, -1154500, 0.999933333, 0, 0, 414000, 800000, 0}, "IDAHO WEST"},
	{1201, spTM, [9]float64{6378137, 0.0066943800229, -882000, 0.999975, 0, 0, 364000, 300000, 0}, "ILLINOIS EAST"},
	{1202, spTM, [9]float64{6378137, 0.0066943800229, -901000, 0.999941177, 0, 0, 364000, 700000, 0}, "ILLINOIS WEST"},
	{1301, spTM, [9]float64{6378137, 0.0066943800229, -854000, 0.999966667, 0, 0, 373000, 100000, 250000}, "INDIANA EAST"},
	{1302, spTM, [9]float64{6378137, 0.0066943800229, -870500, 0.999966667, 0, 0, 373000, 900000, 250000}, "INDIANA WEST"},
	{1401, spLCC, [9]float64{6378137, 0.0066943800229, -933000, 0, 431600, 420400, 413000, 1500000, 1000000}, "IOWA NORTH"},
	{1402, spLCC, [9]float64{6378137, 0.0066943800229, -933000, 0, 414700, 403700, 400000, 500000, 0}, "IOWA SOUTH"},
	{1501, spLCC, [9]float64{6378137, 0.0066943800229, -980000, 0, 394700, 384300, 382000, 400000, 0}, "KANSAS NORTH"},
	{1502, spLCC, [9]float64{6378137, 0.0066943800229, -983000, 0, 383400, 371600, 364000, 400000, 400000}, "KANSAS SOUTH"},
	{1601, spLCC, [9]float64{6378137, 0.0066943800229, -841500, 0, 385800, 375800, 373000, 500000, 0}, "KENTUCKY NORTH"},
	{1602, spLCC, [9]float64{6378137, 0.0066943800229, -854500, 0, 375600, 364400, 362000, 500000, 500000}, "KENTUCKY SOUTH"},
	{1701, spLCC, [9]float64{6378137, 0.0066943800229, -923000, 0, 324000, 311000, 303000, 1000000, 0}, "LOUISIANA NORTH"},
	{1702, spLCC, [9]float64{6378137, 0.0066943800229, -912000, 0, 304200, 291800, 283000, 1000000, 0}, "LOUISIANA SOUTH"},
	{1703, spLCC, [9]float64{6378137, 0.0066943800229, -912000, 0, 275000, 261000, 253000, 1000000, 0}, "LOUISIANA OFFSHORE"},
	{1801, spTM, [9]float64{6378137, 0.0066943800229, -683000, 0.9999, 0, 0, 434000, 300000, 0}, "MAINE EAST"},
	{1802, spTM, [9]float64{6378137, 0.0066943800229, -701000, 0.999966667, 0, 0, 425000, 900000, 0}, "MAINE WEST"},
	{1900, spLCC, [9]float64{6378137, 0.0066943800229, -770000, 0, 392700, 381800, 374000, 400000, 0}, "MARYLAND"},
	{2001, spLCC, [9]float64{6378137, 0.0066943800229, -713000, 0, 424100, 414300, 410000, 200000, 750000}, "MASSACHUSETTS MAINLAND"},
	{2002, spLCC, [9]float64{6378137, 0.0066943800229, -703000, 0, 412900, 411700, 410000, 500000, 0}, "MASSACHUSETTS ISLAND"},
	{2101, spInvalid, [9]float64{}, "MICHIGAN EAST"},
	{2102, spInvalid, [9]float64{}, "MICHIGAN CENTRAL/M"},
	{2103, spInvalid, [9]float64{}, "MICHIGAN WEST"},
	{2111, spLCC, [9]float64{6378137, 0.0066943800229, -870000, 0, 470500, 452900, 444700, 8000000, 0}, "MICHIGAN NORTH"},
	{2112, spLCC, [9]float64{6378137, 0.0066943800229, -842200, 0, 454200, 441100, 431900, 6000000, 0}, "MICHIGAN CENTRAL"},
	{2113, spLCC, [9]float64{6378137, 0.0066943800229, -842200, 0, 434000, 420600, 413000, 4000000, 0}, "MICHIGAN SOUTH"},
	{2201, spLCC, [9]float64{6378137, 0.0066943800229, -930600, 0, 483800, 470200, 463000, 800000, 100000}, "MINNESOTA NORTH"},
	{2202, spLCC, [9]float64{6378137, 0.0066943800229, -941500, 0, 470300, 453700, 450000, 800000, 100000}, "MINNESOTA CENTRAL"},
	{2203, spLCC, [9]float64{6378137, 0.0066943800229, -940000, 0, 451300, 434700, 430000, 800000, 100000}, "MINNESOTA SOUTH"},
	{2301, spTM, [9]float64{6378137, 0.0066943800229, -885000, 0.99995, 0, 0, 293000, 300000, 0}, "MISSISSIPPI EAST"},
	{2302, spTM, [9]float64{6378137, 0.0066943800229, -902000, 0.99995, 0, 0, 293000, 700000, 0}, "MISSISSIPPI WEST"},
	{2401, spTM, [9]float64{6378137, 0.0066943800229, -903000, 0.999933333, 0, 0, 355000, 250000, 0}, "MISSOURI EAST"},
	{2402, spTM, [9]float64{6378137, 0.0066943800229, -923000, 0.999933333, 0, 0, 355000, 500000, 0}, "MISSOURI CENTRAL"},
	{2403, spTM, [9]float64{6378137, 0.0066943800229, -943000, 0.999941177, 0, 0, 361000, 850000, 0}, "MISSOURI WEST"},
	{2500, spLCC, [9]float64{6378137, 0.0066943800229, -1093000, 0, 490000, 450000, 441500, 600000, 0}, "MONTANA"},
	{2501, spInvalid, [9]float64{}, "MONTANA NORTH"},
	{2502, spInvalid, [9]float64{}, "MONTANA CENTRAL"},
	{2503, spInvalid, [9]float64{}, "MONTANA SOUTH"},
	{2600, spLCC, [9]float64{6378137, 0.0066943800229, -1000000, 0, 430000, 400000, 395000, 500000, 0}, "NEBRASKA"},
	{2601, spInvalid, [9]float64{}, "NEBRASKA NORTH"},
	{2602, spInvalid, [9]float64{}, "NEBRASKA SOUTH"},
	{2701, spTM, [9]float64{6378137, 0.0066943800229, -1153500, 0.9999, 0, 0, 344500, 200000, 8000000}, "NEVADA EAST"},
	{2702, spTM, [9]float64{6378137, 0.0066943800229, -1164000, 0.9999, 0, 0, 344500, 500000, 6000000}, "NEVADA CENTRAL"},
	{2703, spTM, [9]float64{6378137, 0.0066943800229, -1183500, 0.9999, 0, 0, 344500, 800000, 4000000}, "NEVADA WEST"},
	{2800, spTM, [9]float64{6378137, 0.0066943800229, -714000, 0.999966667, 0, 0, 423000, 300000, 0}, "NEW HAMPSHIRE"},
	{2900, spTM, [9]float64{6378137, 0.0066943800229, -743000, 0.9999, 0, 0, 385000, 150000, 0}, "NEW JERSEY"},
	{3001, spTM, [9]float64{6378137, 0.0066943800229, -1042000, 0.999909091, 0, 0, 310000, 165000, 0}, "NEW MEXICO EAST"},
	{3002, spTM, [9]float64{6378137, 0.0066943800229, -1061500, 0.9999, 0, 0, 310000, 500000, 0}, "NEW MEXICO CENTRAL"},
	{3003, spTM, [9]float64{6378137, 0.0066943800229, -1075000, 0.999916667, 0, 0, 310000, 830000, 0}, "NEW MEXICO WEST"},
	{3101, spTM, [9]float64{6378137, 0.0066943800229, -743000, 0.9999, 0, 0, 385000, 150000, 0}, "NEW YORK EAST"},
	{3102, spTM, [9]float64{6378137, 0.0066943800229, -763500, 0.9999375, 0, 0, 400000, 250000, 0}, "NEW YORK CENTRAL"},
	{3103, spTM, [9]float64{6378137, 0.0066943800229, -783500, 0.9999375, 0, 0, 400000, 350000, 0}, "NEW YORK WEST"},
	{3104, spLCC, [9]float64{6378137, 0.0066943800229, -740000, 0, 410200, 404000, 401000, 300000, 0}, "NEW YORK LONG ISLAND"},
	{3200, spLCC, [9]float64{6378137, 0.0066943800229, -790000, 0, 361000, 342000, 334500, 609601.22, 0}, "NORTH CAROLINA"},
	{3301, spLCC, [9]float64{6378137, 0.0066943800229, -1003000, 0, 484400, 472600, 470000, 600000, 0}, "NORTH DAKOTA NORTH"},
	{3302, spLCC, [9]float64{6378137, 0.0066943800229, -1003000, 0, 472900, 461100, 454000, 600000, 0}, "NORTH DAKOTA SOUTH"},
	{3401, spLCC, [9]float64{6378137, 0.0066943800229, -823000, 0, 414200, 402600, 394000, 600000, 0}, "OHIO NORTH"},
	{3402, spLCC, [9]float64{6378137, 0.0066943800229, -823000, 0, 400200, 384400, 380000, 600000, 0}, "OHIO SOUTH"},
	{3501, spLCC, [9]float64{6378137, 0.0066943800229, -980000, 0, 364600, 353400, 350000, 600000, 0}, "OKLAHOMA NORTH"},
	{3502, spLCC, [9]float64{6378137, 0.0066943800229, -980000, 0, 351400, 335600, 332000, 600000, 0}, "OKLAHOMA SOUTH"},
	{3601, spLCC, [9]float64{6378137, 0.0066943800229, -1203000, 0, 460000, 442000, 434000, 2500000, 0}, "OREGON NORTH"},
	{3602, spLCC, [9]float64{6378137, 0.0066943800229, -1203000, 0, 440000, 422000, 414000, 1500000, 0}, "OREGON SOUTH"},
	{3701, spLCC, [9]float64{6378137, 0.0066943800229, -774500, 0, 415700, 405300, 401000, 600000, 0}, "PENNSYLVANIA NORTH"},
	{3702, spLCC, [9]float64{6378137, 0.0066943800229, -774500, 0, 405800, 395600, 392000, 600000, 0}, "PENNSYLVANIA SOUTH"},
	{3800, spTM, [9]float64{6378137, 0.0066943800229, -713000, 0.99999375, 0, 0, 410500, 100000, 0}, "RHODE ISLAND"},
	{3900, spLCC, [9]float64{6378137, 0.0066943800229, -810000, 0, 345000, 323000, 315000, 609600, 0}, "SOUTH CAROLINA"},
	{3901, spInvalid, [9]float64{}, "SOUTH CAROLINA NORTH"},
	{3902, spInvalid, [9]float64{}, "SOUTH CAROLINA SOUTH"},
	{4001, spLCC, [9]float64{6378137, 0.0066943800229, -1000000, 0, 454100, 442500, 435000, 600000, 0}, "SOUTH DAKOTA NORTH"},
	{4002, spLCC, [9]float64{6378137, 0.0066943800229, -1002000, 0, 442400, 425000, 422000, 600000, 0}, "SOUTH DAKOTA SOUTH"},
	{4100, spLCC, [9]float64{6378137, 0.0066943800229, -860000, 0, 362500, 351500, 342000, 600000, 0}, "TENNESSEE"},
	{4201, spLCC, [9]float64{6378137, 0.0066943800229, -1013000, 0, 361100, 343900, 340000, 200000, 1000000}, "TEXAS NORTH"},
	{4202, spLCC, [9]float64{6378137, 0.0066943800229, -983000, 0, 335800, 320800, 314000, 600000, 2000000}, "TEXAS NORTH CENTRAL"},
	{4203, spLCC, [9]float64{6378137, 0.0066943800229, -1002000, 0, 315300, 300700, 294000, 700000, 3000000}, "TEXAS CENTRAL"},
	{4204, spLCC, [9]float64{6378137, 0.0066943800229, -990000, 0, 301700, 282300, 275000, 600000, 4000000}, "TEXAS SOUTH CENTRAL"},
	{4205, spLCC, [9]float64{6378137, 0.0066943800229, -983000, 0, 275000, 261000, 254000, 300000, 5000000}, "TEXAS SOUTH"},
	{4301, spLCC, [9]float64{6378137, 0.0066943800229, -1113000, 0, 414700, 404300, 402000, 500000, 1000000}, "UTAH NORTH"},
	{4302, spLCC, [9]float64{6378137, 0.0066943800229, -1113000, 0, 403900, 390100, 382000, 500000, 2000000}, "UTAH CENTRAL"},
	{4303, spLCC, [9]float64{6378137, 0.0066943800229, -1113000, 0, 382100, 371300, 364000, 500000, 3000000}, "UTAH SOUTH"},
	{4400, spTM, [9]float64{6378137, 0.0066943800229, -723000, 0.999964286, 0, 0, 423000, 500000, 0}, "VERMONT"},
	{4501, spLCC, [9]float64{6378137, 0.0066943800229, -783000, 0, 391200, 380200, 374000, 3500000, 2000000}, "VIRGINIA NORTH"},
	{4502, spLCC, [9]float64{6378137, 0.0066943800229, -783000, 0, 375800, 364600, 362000, 3500000, 1000000}, "VIRGINIA SOUTH"},
	{4601, spLCC, [9]float64{6378137, 0.0066943800229, -1205000, 0, 484400, 473000, 470000, 500000, 0}, "WASHINGTON NORTH"},
	{4602, spLCC, [9]float64{6378137, 0.0066943800229, -1203000, 0, 472000, 455000, 452000, 500000, 0}, "WASHINGTON SOUTH"},
	{4701, spLCC, [9]float64{6378137, 0.0066943800229, -793000, 0, 401500, 390000, 383000, 600000, 0}, "WEST VIRGINIA NORTH"},
	{4702, spLCC, [9]float64{6378137, 0.0066943800229, -810000, 0, 385300, 372900, 370000, 600000, 0}, "WEST VIRGINIA SOUTH"},
	{4801, spLCC, [9]float64{6378137, 0.0066943800229, -900000, 0, 464600, 453400, 451000, 600000, 0}, "WISCONSIN NORTH"},
	{4802, spLCC, [9]float64{6378137, 0.0066943800229, -900000, 0, 453000, 441500, 435000, 600000, 0}, "WISCONSIN CENTRAL"},
	{4803, spLCC, [9]float64{6378137, 0.0066943800229, -900000, 0, 440400, 424400, 420000, 600000, 0}, "WISCONSIN SOUTH"},
	{4901, spTM, [9]float64{6378137, 0.0066943800229, -1051000, 0.9999375, 0, 0, 403000, 200000, 0}, "WYOMING EAST"},
	{4902, spTM, [9]float64{6378137, 0.0066943800229, -1072000, 0.9999375, 0, 0, 403000, 400000, 100000}, "WYOMING EAST CENTRAL"},
	{4903, spTM, [9]float64{6378137, 0.0066943800229, -1084500, 0.9999375, 0, 0, 403000, 600000, 0}, "WYOMING WEST CENTRAL"},
	{4904, spTM, [9]float64{6378137, 0.0066943800229, -1100500, 0.9999375, 0, 0, 403000, 800000, 100000}, "WYOMING WEST"},
	{5001, spHOM, [9]float64{6378137, 0.0066943800229, -1334000, 0.9999, 0, -365211.6315, 570000, 5000000, -5000000}, "ALASKA ZONE NO. 1"},
	{5002, spTM, [9]float64{6378137, 0.0066943800229, -1420000, 0.9999, 0, 0, 540000, 500000, 0}, "ALASKA ZONE NO. 2"},
	{5003, spTM, [9]float64{6378137, 0.0066943800229, -1460000, 0.9999, 0, 0, 540000, 500000, 0}, "ALASKA ZONE NO. 3"},
	{5004, spTM, [9]float64{6378137, 0.0066943800229, -1500000, 0.9999, 0, 0, 540000, 500000, 0}, "ALASKA ZONE NO. 4"},
	{5005, spTM, [9]float64{6378137, 0.0066943800229, -1540000, 0.9999, 0, 0, 540000, 500000, 0}, "ALASKA ZONE NO. 5"},
	{5006, spTM, [9]float64{6378137, 0.0066943800229, -1580000, 0.9999, 0, 0, 540000, 500000, 0}, "ALASKA ZONE NO. 6"},
	{5007, spTM, [9]float64{6378137, 0.0066943800229, -1620000, 0.9999, 0, 0, 540000, 500000, 0}, "ALASKA ZONE NO. 7"},
	{5008, spTM, [9]float64{6378137, 0.0066943800229, -1660000, 0.9999, 0, 0, 540000, 500000, 0}, "ALASKA ZONE NO. 8"},
	{5009, spTM, [9]float64{6378137, 0.0066943800229, -1700000, 0.9999, 0, 0, 540000, 500000, 0}, "ALASKA ZONE NO. 9"},
	{5010, spLCC, [9]float64{6378137, 0.0066943800229, -1760000, 0, 535000, 515000, 510000, 1000000, 0}, "ALASKA ZONE NO. 10"},
	{5101, spTM, [9]float64{6378137, 0.0066943800229, -1553000, 0.999966667, 0, 0, 185000, 500000, 0}, "HAWAII 1"},
	{5102, spTM, [9]float64{6378137, 0.0066943800229, -1564000, 0.999966667, 0, 0, 202000, 500000, 0}, "HAWAII 2"},
	{5103, spTM, [9]float64{6378137, 0.0066943800229, -1580000, 0.99999, 0, 0, 211000, 500000, 0}, "HAWAII 3"},
	{5104, spTM, [9]float64{6378137, 0.0066943800229, -1593000, 0.99999, 0, 0, 215000, 500000, 0}, "HAWAII 4"},
	{5105, spTM, [9]float64{6378137, 0.0066943800229, -1601000, 1, 0, 0, 214000, 500000, 0}, "HAWAII 5"},
	{5200, spLCC, [9]float64{6378137, 0.0066943800229, -662600, 0, 182600, 180200, 175000, 200000, 200000}, "PUERTO RICO & VIRGIN ISLANDS"},
	{5201, spInvalid, [9]float64{}, "PUERTO RICO"},
	{5202, spInvalid, [9]float64{}, "VIRGIN ISLANDS"},
	{5300, spInvalid, [9]float64{}, "AMERICAN SAMOA"},
	{5400, spInvalid, [9]float64{}, "GUAM ISLAND"},
}
